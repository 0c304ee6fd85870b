package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ReportStore is the append-only scam report counter keyed by offer hash.
// Increments must be serialized so concurrent reports of the same hash
// never lose updates.
type ReportStore interface {
	// Get returns the current report count for the hash (0 if unseen).
	Get(ctx context.Context, offerHash string) (int, error)
	// Increment adds one report and returns the new count.
	Increment(ctx context.Context, offerHash string) (int, error)
}

type reportStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewReportStore creates a Postgres-backed report store.
func NewReportStore(db *sqlx.DB, logger *zap.Logger) ReportStore {
	return &reportStore{db: db, logger: logger}
}

func (r *reportStore) Get(ctx context.Context, offerHash string) (int, error) {
	var count int
	query := `SELECT reports_count FROM scam_reports WHERE offer_hash = $1`

	err := r.db.GetContext(ctx, &count, query, offerHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		r.logger.Error("Failed to get report count", zap.String("offer_hash", offerHash), zap.Error(err))
		return 0, err
	}

	return count, nil
}

// Increment is a single atomic upsert; the database serializes concurrent
// increments for the same hash.
func (r *reportStore) Increment(ctx context.Context, offerHash string) (int, error) {
	var count int
	query := `
		INSERT INTO scam_reports (offer_hash, reports_count, first_reported_at, last_reported_at)
		VALUES ($1, 1, now(), now())
		ON CONFLICT (offer_hash) DO UPDATE
		SET reports_count = scam_reports.reports_count + 1,
		    last_reported_at = now()
		RETURNING reports_count
	`

	err := r.db.QueryRowContext(ctx, query, offerHash).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to increment report count", zap.String("offer_hash", offerHash), zap.Error(err))
		return 0, err
	}

	return count, nil
}
