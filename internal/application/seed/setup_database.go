package seed

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	domain "github.com/sqlplayground/playground/internal/domain/seed"
)

const (
	PhaseDrop     = "drop"
	PhaseFunction = "function"
	PhaseCreate   = "create"
	PhaseGenerate = "generate"
	PhaseLoad     = "load"
)

type SetupDatabaseInput struct {
	// Config of the run; nil means the default configuration.
	Config *domain.Config
	// Trigger labels the run in history: "setup", "reset" or "cli".
	Trigger string
}

type SetupDatabaseOutput struct {
	RunID  string    `json:"run_id,omitempty"`
	Counts RowCounts `json:"counts"`
}

type SetupDatabase interface {
	Execute(ctx context.Context, in SetupDatabaseInput) (SetupDatabaseOutput, error)
}

// setupDatabase is the schema lifecycle orchestrator: drop everything,
// reinstall the run_query helper, recreate the schema, generate a dataset and
// bulk-load it. Any phase failure is fatal to the whole run; nothing resumes
// past it. A second invocation while one is in flight fails fast instead of
// racing the first over drop/create/insert.
type setupDatabase struct {
	exec   StatementExecutor
	loader *BulkLoader
	runs   RunRecorder
	logger *zap.Logger
	now    func() time.Time

	inFlight atomic.Bool
}

func NewSetupDatabase(exec StatementExecutor, runs RunRecorder, logger *zap.Logger) SetupDatabase {
	if runs == nil {
		runs = NopRunRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &setupDatabase{
		exec:   exec,
		loader: NewBulkLoader(exec),
		runs:   runs,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *setupDatabase) Execute(ctx context.Context, in SetupDatabaseInput) (SetupDatabaseOutput, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		return SetupDatabaseOutput{}, ErrSetupInProgress
	}
	defer uc.inFlight.Store(false)

	now := uc.now()

	cfg := domain.DefaultConfig(now)
	if in.Config != nil {
		cfg = *in.Config
	}
	cfg = cfg.WithDefaults(now)
	if err := cfg.Validate(); err != nil {
		return SetupDatabaseOutput{}, err
	}

	trigger := in.Trigger
	if trigger == "" {
		trigger = "setup"
	}

	runID, err := uc.runs.Begin(ctx, trigger, cfg)
	if err != nil {
		return SetupDatabaseOutput{}, fmt.Errorf("%w: %v", ErrRecordRun, err)
	}

	uc.logger.Info("database setup started",
		zap.String("run_id", runID),
		zap.String("trigger", trigger),
		zap.Int("users", cfg.Users),
		zap.Int("products", cfg.Products),
		zap.Int("orders", cfg.Orders),
		zap.Bool("error_injection", cfg.ErrorConfig.Enabled))

	uc.logger.Info("dropping existing tables")
	for _, statement := range dropStatements {
		if _, err := uc.exec.Execute(ctx, statement); err != nil {
			return SetupDatabaseOutput{}, uc.fail(ctx, runID, PhaseDrop, err)
		}
	}

	uc.logger.Info("installing run_query helper function")
	if err := EnsureRunQueryFunction(ctx, uc.exec); err != nil {
		return SetupDatabaseOutput{}, uc.fail(ctx, runID, PhaseFunction, err)
	}

	uc.logger.Info("creating tables")
	for _, statement := range createStatements {
		if _, err := uc.exec.Execute(ctx, statement); err != nil {
			return SetupDatabaseOutput{}, uc.fail(ctx, runID, PhaseCreate, err)
		}
	}

	uc.logger.Info("generating dataset")
	dataset, err := domain.NewGenerator(nil, now).Build(cfg)
	if err != nil {
		return SetupDatabaseOutput{}, uc.fail(ctx, runID, PhaseGenerate, err)
	}

	counts := RowCounts{
		Countries:  len(dataset.Countries),
		Cities:     len(dataset.Cities),
		Users:      len(dataset.Users),
		Products:   len(dataset.Products),
		Orders:     len(dataset.Orders),
		OrderItems: len(dataset.OrderItems),
	}

	uc.logger.Info("loading dataset",
		zap.Int("countries", counts.Countries),
		zap.Int("cities", counts.Cities),
		zap.Int("users", counts.Users),
		zap.Int("products", counts.Products),
		zap.Int("orders", counts.Orders),
		zap.Int("order_items", counts.OrderItems))
	if err := uc.loader.Load(ctx, dataset); err != nil {
		return SetupDatabaseOutput{}, uc.fail(ctx, runID, PhaseLoad, err)
	}

	if err := uc.runs.Complete(ctx, runID, counts); err != nil {
		return SetupDatabaseOutput{}, fmt.Errorf("%w: %v", ErrRecordRun, err)
	}

	uc.logger.Info("database setup completed", zap.String("run_id", runID))

	return SetupDatabaseOutput{RunID: runID, Counts: counts}, nil
}

func (uc *setupDatabase) fail(ctx context.Context, runID, phase string, err error) error {
	uc.logger.Error("database setup failed",
		zap.String("run_id", runID),
		zap.String("phase", phase),
		zap.Error(err))
	if recordErr := uc.runs.Fail(ctx, runID, phase, err.Error()); recordErr != nil {
		uc.logger.Warn("failed to record run failure", zap.Error(recordErr))
	}
	return &PhaseError{Phase: phase, Err: err}
}
