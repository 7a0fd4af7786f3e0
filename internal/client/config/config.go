package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
)

// Config holds runtime settings for the CLI.
type Config struct {
	ServerEndpointAddr string
	KeystoreDir        string
	ProgramID          string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults. The keystore lives under
// the user's home directory when it can be resolved.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.KeystoreDir = ".tokenregister/keys"
	if home, err := os.UserHomeDir(); err == nil {
		c.KeystoreDir = filepath.Join(home, ".tokenregister", "keys")
	}
	c.ProgramID = common.DefaultProgramID
	c.RequestTimeout = 10 * time.Second
}

// Load applies defaults, then the JSON file, then flags found in args.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
