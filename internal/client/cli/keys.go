package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/tokenregister/internal/cryptox"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) keygen(_ context.Context, args []string) error {
	fs := newFlagSet("keygen")
	name := fs.String("name", "", "key name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}

	pass, err := GetPassphrase(a.out, *name, true)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(pass)
	key, err := a.keys.Generate(*name, pass)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s\n", *name, key.PublicKey())
	return nil
}

func (a *App) pubkey(_ context.Context, args []string) error {
	fs := newFlagSet("pubkey")
	name := fs.String("name", "", "key name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}

	pk, err := a.keys.PublicKey(*name)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, pk.String())
	return nil
}
