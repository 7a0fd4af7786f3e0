package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/flagx"
)

// parseFlags reads the global flags; sub-command flags in args are skipped.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-i", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.KeystoreDir, "w", cfg.KeystoreDir, "keystore directory")
	fs.StringVar(&cfg.ProgramID, "i", cfg.ProgramID, "registry program id")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
