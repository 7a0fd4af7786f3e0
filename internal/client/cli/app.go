package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dmitrijs2005/tokenregister/internal/client/client"
	"github.com/dmitrijs2005/tokenregister/internal/client/config"
	"github.com/dmitrijs2005/tokenregister/internal/cryptox"
	"github.com/dmitrijs2005/tokenregister/internal/flagx"
	"github.com/dmitrijs2005/tokenregister/internal/registry/address"
	"github.com/gagliardetto/solana-go"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var errUsage = errors.New("usage")

// dialer opens a connection to the node. Tests replace it.
type dialer func(cfg *config.Config, accessToken string) (client.Client, error)

func dialGRPC(cfg *config.Config, accessToken string) (client.Client, error) {
	return client.NewRegistryClientService(cfg.ServerEndpointAddr, accessToken)
}

type App struct {
	config  *config.Config
	keys    *cryptox.Keystore
	deriver *address.Deriver
	dial    dialer
	out     io.Writer
}

type command struct {
	flags []string
	help  string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"keygen":         {[]string{"-name"}, "keygen -name N", (*App).keygen},
	"pubkey":         {[]string{"-name"}, "pubkey -name N", (*App).pubkey},
	"create-mint":    {[]string{"-payer", "-mint", "-authority", "-decimals"}, "create-mint -payer N -mint N -authority KEY -decimals D", (*App).createMint},
	"init":           {[]string{"-payer"}, "init -payer N", (*App).initialize},
	"update-manager": {[]string{"-signer", "-new"}, "update-manager -signer N -new KEY", (*App).updateManager},
	"register":       {[]string{"-signer", "-mint", "-name", "-symbol", "-uri"}, "register -signer N -mint KEY -name .. -symbol .. -uri ..", (*App).register},
	"update-token":   {[]string{"-signer", "-mint", "-name", "-symbol", "-uri"}, "update-token -signer N -mint KEY -name .. -symbol .. -uri ..", (*App).updateToken},
	"show-manager":   {nil, "show-manager", (*App).showManager},
	"show-token":     {[]string{"-mint"}, "show-token -mint KEY", (*App).showToken},
	"list-tokens":    {nil, "list-tokens", (*App).listTokens},
	"tx":             {[]string{"-id"}, "tx -id ID", (*App).showTransaction},
	"snapshot":       {[]string{"-token", "-out"}, "snapshot [-token T] [-out FILE]", (*App).snapshot},
	"ping":           {nil, "ping", (*App).ping},
}

func NewApp(c *config.Config) (*App, error) {
	programID, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("program id: %w", err)
	}
	return &App{
		config:  c,
		keys:    cryptox.NewKeystore(c.KeystoreDir),
		deriver: address.NewDeriver(programID, 0),
		dial:    dialGRPC,
		out:     os.Stdout,
	}, nil
}

// Run executes the sub-command named in args.
func (a *App) Run(ctx context.Context, args []string) error {
	name, rest := flagx.SplitCommand(args)
	if name == "" || name == "help" {
		a.usage()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	if err := cmd.run(a, ctx, flagx.FilterArgs(rest, cmd.flags)); err != nil {
		if errors.Is(err, errUsage) {
			return fmt.Errorf("%w: %s", err, cmd.help)
		}
		return err
	}
	return nil
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Usage: cli [-a addr] [-w keystore] [-i program] [-t seconds] [-c config.json] <command> [flags]")
	fmt.Fprintln(a.out, "Commands:")
	for _, n := range names {
		fmt.Fprintln(a.out, "  "+commands[n].help)
	}
}

// connect dials the node and bounds ctx by the configured timeout.
func (a *App) connect(ctx context.Context, accessToken string) (client.Client, context.Context, func(), error) {
	c, err := a.dial(a.config, accessToken)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	return c, ctx, func() {
		cancel()
		_ = c.Close()
	}, nil
}

// resolvePublicKey accepts a base58 public key or a keystore name.
func (a *App) resolvePublicKey(ref string) (solana.PublicKey, error) {
	if ref == "" {
		return solana.PublicKey{}, fmt.Errorf("%w: missing key", errUsage)
	}
	if pk, err := solana.PublicKeyFromBase58(ref); err == nil {
		return pk, nil
	}
	return a.keys.PublicKey(ref)
}

// unlock decrypts the keystore entry name.
func (a *App) unlock(name string) (solana.PrivateKey, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing key name", errUsage)
	}
	if _, err := a.keys.PublicKey(name); err != nil {
		return nil, err
	}
	pass, err := GetPassphrase(a.out, name, false)
	if err != nil {
		return nil, err
	}
	defer cryptox.Wipe(pass)
	return a.keys.Load(name, pass)
}

var printOptions = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true, EmitUnpopulated: true}

func (a *App) printJSON(m proto.Message) error {
	b, err := printOptions.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func required(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, "-"+pairs[i])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", errUsage, strings.Join(missing, ", "))
	}
	return nil
}
