// Package server assembles the registry node: storage, the ledger runtime
// with its programs, the services and the gRPC endpoint. It handles
// graceful shutdown on SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/logging"
	"github.com/dmitrijs2005/tokenregister/internal/registry/address"
	"github.com/dmitrijs2005/tokenregister/internal/registry/processor"
	"github.com/dmitrijs2005/tokenregister/internal/runtime"
	"github.com/dmitrijs2005/tokenregister/internal/runtime/tokenprogram"
	"github.com/dmitrijs2005/tokenregister/internal/server/config"
	"github.com/dmitrijs2005/tokenregister/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokenregister/internal/server/services"
	"github.com/dmitrijs2005/tokenregister/internal/tracing"
	"github.com/gagliardetto/solana-go"

	gs "github.com/dmitrijs2005/tokenregister/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	tracing   *tracing.Provider
	registry  *services.RegistryService
	snapshots *services.SnapshotService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	programID, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("program id: %w", err)
	}

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		Exporter:     c.TracingExporter,
		FilePath:     c.TracingFilePath,
		OTLPEndpoint: c.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init error: %w", err)
	}

	rm, err := repomanager.New(c.StorageDriver)
	if err != nil {
		return nil, err
	}

	db, err := rm.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	deriver := address.NewDeriver(programID, c.AddressCacheTTL)
	programs := []runtime.Program{
		processor.New(deriver, logger),
		tokenprogram.New(),
	}
	rt := runtime.New(db, rm, logger, programs, runtime.WithTracer(tp.Tracer()))

	rs := services.NewRegistryService(rt, deriver, logger)
	ss := services.NewSnapshotService(rs, c)

	logger.Info(ctx, "registry node configured",
		"program_id", programID.String(),
		"storage", c.StorageDriver,
		"tracing", c.TracingExporter,
	)

	return &App{config: c, logger: logger, db: db, tracing: tp, registry: rs, snapshots: ss}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.registry, app.snapshots, app.config.SecretKey, app.tracing.Tracer())

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.tracing.Shutdown(ctx); err != nil {
		app.logger.Error(ctx, "tracing shutdown", "error", err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err.Error())
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.shutdown()
	app.logger.Info(ctx, "App stopped")
}
