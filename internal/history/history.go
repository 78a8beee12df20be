// Package history stores served predictions in PostgreSQL.
package history

import (
	"context"
	"fmt"
	"time"

	"house-price/internal/prediction"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

// Entry is one stored prediction
type Entry struct {
	ID          string    `db:"id" json:"id"`
	Latitude    float64   `db:"latitude" json:"latitude"`
	Longitude   float64   `db:"longitude" json:"longitude"`
	Place       string    `db:"place" json:"place"`
	State       string    `db:"state" json:"state,omitempty"`
	Tier        int       `db:"tier" json:"tier"`
	SquareFt    float64   `db:"square_ft" json:"square_ft"`
	Bedrooms    int       `db:"bhk_no" json:"bedrooms"`
	ReadyToMove bool      `db:"ready_to_move" json:"ready_to_move"`
	RawOutput   float64   `db:"raw_output" json:"raw_output"`
	Price       float64   `db:"price" json:"price"`
	Currency    string    `db:"currency" json:"currency"`
	Formatted   string    `db:"formatted" json:"formatted"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS predictions (
	id            TEXT PRIMARY KEY,
	latitude      DOUBLE PRECISION NOT NULL,
	longitude     DOUBLE PRECISION NOT NULL,
	place         TEXT NOT NULL,
	state         TEXT NOT NULL DEFAULT '',
	tier          SMALLINT NOT NULL,
	square_ft     DOUBLE PRECISION NOT NULL,
	bhk_no        INTEGER NOT NULL,
	ready_to_move BOOLEAN NOT NULL,
	raw_output    DOUBLE PRECISION NOT NULL,
	price         DOUBLE PRECISION NOT NULL,
	currency      TEXT NOT NULL,
	formatted     TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
)`

// Repository records and lists predictions
type Repository struct {
	db *sqlx.DB
}

// Open connects to PostgreSQL
func Open(dsn string, maxConnections int) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if maxConnections > 0 {
		db.SetMaxOpenConns(maxConnections)
		db.SetMaxIdleConns(maxConnections)
	}
	return db, nil
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the predictions table if needed
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create predictions table: %w", err)
	}
	return nil
}

// Record implements prediction.Recorder
func (r *Repository) Record(ctx context.Context, result *prediction.Result) error {
	const query = `
		INSERT INTO predictions (
			id, latitude, longitude, place, state, tier,
			square_ft, bhk_no, ready_to_move,
			raw_output, price, currency, formatted, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)`

	_, err := r.db.ExecContext(ctx, query,
		result.ID, result.Coordinates.Latitude, result.Coordinates.Longitude,
		result.Location.Name, result.Location.State, int(result.Tier),
		result.Features.SquareFt, result.Features.BHKNo, result.Features.ReadyToMove == 1,
		result.RawOutput, result.Price.Amount, result.Price.Currency, result.Formatted, result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

// Recent returns the newest predictions first. limit is clamped to [1, 200], 0 means 20.
func (r *Repository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}

	const query = `
		SELECT id, latitude, longitude, place, state, tier,
			square_ft, bhk_no, ready_to_move,
			raw_output, price, currency, formatted, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1`

	entries := []Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	return entries, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
