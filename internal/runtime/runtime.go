// Package runtime is a single-node ledger: it verifies signed
// transactions, routes their instructions to programs by program id and
// applies each transaction atomically against the account store.
package runtime

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/dbx"
	"github.com/dmitrijs2005/tokenregister/internal/logging"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
	"github.com/dmitrijs2005/tokenregister/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokenregister/internal/tracing"
	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Program processes the instructions addressed to its id.
type Program interface {
	ID() solana.PublicKey
	// Name returns a short label of the instruction for logs and spans.
	Name(data []byte) string
	Process(ctx context.Context, ic *InvokeContext, ix *instruction.Instruction) error
}

type Runtime struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	programs map[solana.PublicKey]Program
	logger   logging.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

type Option func(*Runtime)

func WithTracer(t trace.Tracer) Option {
	return func(r *Runtime) {
		if t != nil {
			r.tracer = t
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Runtime) { r.now = now }
}

func New(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger, programs []Program, opts ...Option) *Runtime {
	r := &Runtime{
		db:       db,
		repos:    repos,
		programs: make(map[solana.PublicKey]Program, len(programs)),
		logger:   logger.With("module", "runtime"),
		tracer:   noop.NewTracerProvider().Tracer("noop"),
		now:      time.Now,
	}
	for _, p := range programs {
		r.programs[p.ID()] = p
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Submit decodes, verifies and executes a Borsh-encoded transaction and
// returns its id. Every instruction commits or none does. Outcomes are
// written to the transaction log; a transaction id is accepted once.
func (r *Runtime) Submit(ctx context.Context, raw []byte) (string, error) {
	tx, err := instruction.Unmarshal(raw)
	if err != nil {
		return "", err
	}
	return r.Execute(ctx, tx, raw)
}

// Execute runs an already decoded transaction. raw is stored in the log.
func (r *Runtime) Execute(ctx context.Context, tx *instruction.Transaction, raw []byte) (string, error) {
	signers, err := tx.Verify()
	if err != nil {
		return "", err
	}
	feePayer, err := tx.Message.FeePayer()
	if err != nil {
		return "", err
	}

	names := make([]string, len(tx.Message.Instructions))
	for i, ix := range tx.Message.Instructions {
		p, ok := r.programs[ix.ProgramID]
		if !ok {
			return "", fmt.Errorf("%w: %s", common.ErrUnknownProgram, ix.ProgramID)
		}
		names[i] = p.Name(ix.Data)
	}

	id := tx.ID()
	now := r.now().UTC()
	rec := &models.Transaction{
		ID:           id,
		FeePayer:     feePayer.String(),
		Instructions: strings.Join(names, ","),
		Status:       models.TxStatusSucceeded,
		Raw:          raw,
		CreatedAt:    now,
	}

	ctx, span := r.tracer.Start(ctx, tracing.SpanTransaction, trace.WithAttributes(
		attribute.String(tracing.AttrTxID, id),
		attribute.String(tracing.AttrTxFeePayer, rec.FeePayer),
	))
	defer span.End()

	log := r.logger.With("tx", id)

	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, dbtx dbx.DBTX) error {
		if err := r.repos.Transactions(dbtx).Create(ctx, rec); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return fmt.Errorf("%w: %s", common.ErrDuplicateTransaction, id)
			}
			return err
		}

		ic := NewInvokeContext(r.repos.Accounts(dbtx), signers, feePayer, now, log)
		for i := range tx.Message.Instructions {
			if err := r.invoke(ctx, ic, i, names[i], &tx.Message.Instructions[i]); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, common.ErrDuplicateTransaction) {
			r.recordFailure(ctx, rec, err)
		}
		log.Warn(ctx, "transaction failed", "instructions", rec.Instructions, "error", err.Error())
		return id, err
	}

	span.SetAttributes(attribute.String(tracing.AttrTxStatus, rec.Status))
	span.SetStatus(codes.Ok, "")
	log.Info(ctx, "transaction executed", "instructions", rec.Instructions, "fee_payer", rec.FeePayer)
	return id, nil
}

func (r *Runtime) invoke(ctx context.Context, ic *InvokeContext, index int, name string, ix *instruction.Instruction) error {
	ctx, span := r.tracer.Start(ctx, tracing.SpanPrefixInstruction+name, trace.WithAttributes(
		attribute.Int(tracing.AttrIxIndex, index),
		attribute.String(tracing.AttrIxProgram, ix.ProgramID.String()),
		attribute.String(tracing.AttrIxName, name),
	))
	defer span.End()

	ic.ProgramID = ix.ProgramID
	if err := r.programs[ix.ProgramID].Process(ctx, ic, ix); err != nil {
		if code, ok := common.ErrorCode(err); ok {
			span.SetAttributes(attribute.Int64(tracing.AttrErrorCode, int64(code)))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("instruction %d (%s): %w", index, name, err)
	}
	return nil
}

// recordFailure logs a failed transaction outside the rolled back one so its
// id cannot be replayed.
func (r *Runtime) recordFailure(ctx context.Context, rec *models.Transaction, cause error) {
	failed := *rec
	failed.Status = models.TxStatusFailed
	failed.Error = cause.Error()
	if code, ok := common.ErrorCode(cause); ok {
		failed.ErrorCode = int64(code)
	}

	if err := r.repos.Transactions(r.db).Create(context.WithoutCancel(ctx), &failed); err != nil && !errors.Is(err, common.ErrorAlreadyExists) {
		r.logger.Error(ctx, "record failed transaction", "tx", rec.ID, "error", err.Error())
	}
}

// Transaction returns the log entry of a submitted transaction.
func (r *Runtime) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	return r.repos.Transactions(r.db).Get(ctx, id)
}

// Accounts returns a repository bound to the node database for read paths.
func (r *Runtime) Accounts() AccountReader {
	return r.repos.Accounts(r.db)
}

// AccountReader is the read side of the account store.
type AccountReader interface {
	Get(ctx context.Context, address string) (*models.Account, error)
	ListByOwner(ctx context.Context, owner string) ([]*models.Account, error)
}
