package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tokenregister/internal/netx"
	pb "github.com/dmitrijs2005/tokenregister/internal/proto"
)

// downloadSnapshot is a test seam for netx.DownloadPresignedURL.
var downloadSnapshot = netx.DownloadPresignedURL

func (a *App) showManager(ctx context.Context, _ []string) error {
	c, ctx, done, err := a.connect(ctx, "")
	if err != nil {
		return err
	}
	defer done()

	m, err := c.GetManager(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(m)
}

func (a *App) showToken(ctx context.Context, args []string) error {
	fs := newFlagSet("show-token")
	mintRef := fs.String("mint", "", "mint public key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	mint, err := a.resolvePublicKey(*mintRef)
	if err != nil {
		return err
	}

	c, ctx, done, err := a.connect(ctx, "")
	if err != nil {
		return err
	}
	defer done()

	t, err := c.GetToken(ctx, mint.String())
	if err != nil {
		return err
	}
	return a.printJSON(t)
}

func (a *App) listTokens(ctx context.Context, _ []string) error {
	c, ctx, done, err := a.connect(ctx, "")
	if err != nil {
		return err
	}
	defer done()

	tokens, err := c.ListTokens(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(&pb.ListTokensResponse{Tokens: tokens})
}

func (a *App) showTransaction(ctx context.Context, args []string) error {
	fs := newFlagSet("tx")
	id := fs.String("id", "", "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("id", *id); err != nil {
		return err
	}

	c, ctx, done, err := a.connect(ctx, "")
	if err != nil {
		return err
	}
	defer done()

	tx, err := c.GetTransaction(ctx, *id)
	if err != nil {
		return err
	}
	return a.printJSON(tx)
}

func (a *App) snapshot(ctx context.Context, args []string) error {
	fs := newFlagSet("snapshot")
	token := fs.String("token", getenv(AccessTokenEnv), "operator access token")
	outFile := fs.String("out", "", "also download the snapshot to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" {
		return fmt.Errorf("%w: -token or %s required", errUsage, AccessTokenEnv)
	}

	c, ctx, done, err := a.connect(ctx, *token)
	if err != nil {
		return err
	}
	defer done()

	snap, err := c.Snapshot(ctx)
	if err != nil {
		return err
	}

	if *outFile != "" {
		body, err := downloadSnapshot(ctx, snap.Url)
		if err != nil {
			return fmt.Errorf("download snapshot: %w", err)
		}
		if err := os.WriteFile(*outFile, body, 0o644); err != nil {
			return err
		}
	}
	return a.printJSON(snap)
}

func (a *App) ping(ctx context.Context, _ []string) error {
	c, ctx, done, err := a.connect(ctx, "")
	if err != nil {
		return err
	}
	defer done()

	if err := c.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}
