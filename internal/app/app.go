package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/futdb-sync/external/futdb"
	"github.com/riskibarqy/futdb-sync/internal/config"
	"github.com/riskibarqy/futdb-sync/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/futdb-sync/internal/platform/logging"
	"github.com/riskibarqy/futdb-sync/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 10 * time.Second

// OpenDB opens the Postgres pool with query tracing and checks it is
// reachable. The job writes one row at a time, so one connection is enough.
func OpenDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dsn := cfg.DatabaseURL()
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", usecase.ErrStorage, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping database %s: %w", usecase.ErrStorage, redactDBURL(dsn), err)
	}

	logger.InfoContext(ctx, "database connected", "url", redactDBURL(dsn))
	return db, nil
}

// NewReferenceSync wires the FUT database client and the Postgres writers
// into a sync service. db is usually the pool returned by OpenDB.
func NewReferenceSync(cfg config.Config, db sqlx.ExecerContext, logger *logging.Logger) (*usecase.ReferenceSyncService, error) {
	if logger == nil {
		logger = logging.Default()
	}

	policy, err := usecase.ParsePageBoundPolicy(cfg.SyncPageBound)
	if err != nil {
		return nil, err
	}

	client := futdb.NewClient(futdb.ClientConfig{
		BaseURL: cfg.FutDBBaseURL,
		Token:   cfg.Token,
		Timeout: cfg.FutDBTimeout,
		Logger:  logger.With("component", "futdb"),
	})

	return usecase.NewReferenceSyncService(
		client,
		postgres.NewNationRepository(db),
		postgres.NewClubRepository(db),
		postgres.NewPlayerRepository(db),
		usecase.ReferenceSyncConfig{PageBound: policy},
		logger,
	), nil
}

// Run performs one full sync: connect, ingest every endpoint, disconnect.
func Run(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.SyncResult, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDB(ctx, cfg, logger)
	if err != nil {
		return usecase.SyncResult{}, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WarnContext(ctx, "close database failed", "error", err)
		}
	}()

	service, err := NewReferenceSync(cfg, db, logger)
	if err != nil {
		return usecase.SyncResult{}, err
	}

	return service.Run(ctx)
}
