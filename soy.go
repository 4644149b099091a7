package metis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/zoobzio/astql/postgres"
	"github.com/zoobzio/soy"
)

// Selection is one row of the durable selection history. Only the last
// DefaultHistoryCapacity rows per user ever influence scoring; older
// rows are pruned on write.
type Selection struct {
	ID          string    `db:"id" type:"uuid" constraints:"primarykey"`
	UserKey     string    `db:"user_key" type:"text" constraints:"notnull"`
	FrameworkID string    `db:"framework_id" type:"text" constraints:"notnull"`
	Created     time.Time `db:"created" type:"timestamp" constraints:"notnull"`
}

// SoyHistory implements HistoryStore using soy for Postgres persistence,
// for deployments that snapshot selection history across restarts. The
// database serializes same-key read-modify-write; the core adds no lock.
type SoyHistory struct {
	selections *soy.Soy[Selection]
	db         *sqlx.DB
	capacity   int
}

// NewSoyHistory creates a Postgres-backed history store.
func NewSoyHistory(db *sqlx.DB) (*SoyHistory, error) {
	renderer := postgres.New()

	selections, err := soy.New[Selection](db, "selections", renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize selections table: %w", err)
	}

	return &SoyHistory{
		selections: selections,
		db:         db,
		capacity:   DefaultHistoryCapacity,
	}, nil
}

// Recent implements HistoryStore. Returns the user's last chosen
// framework IDs, oldest first.
func (h *SoyHistory) Recent(ctx context.Context, userKey string) ([]string, error) {
	rows, err := h.selections.Query().
		Where("user_key", "=", "user_key").
		OrderBy("created", "desc").
		Limit(h.capacity).
		Exec(ctx, map[string]any{"user_key": userKey})
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}

	// Rows come back newest first; the history contract is oldest first.
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[len(rows)-1-i] = row.FrameworkID
	}
	return ids, nil
}

// Record implements HistoryStore. Appends the selection and prunes rows
// that have aged out of the ring.
func (h *SoyHistory) Record(ctx context.Context, userKey string, frameworkID string) error {
	row := &Selection{
		ID:          uuid.New().String(),
		UserKey:     userKey,
		FrameworkID: frameworkID,
		Created:     time.Now(),
	}
	if _, err := h.selections.Insert().Exec(ctx, row); err != nil {
		return fmt.Errorf("failed to insert selection: %w", err)
	}

	return h.prune(ctx, userKey)
}

// prune removes rows older than the newest capacity entries for a user.
func (h *SoyHistory) prune(ctx context.Context, userKey string) error {
	rows, err := h.selections.Query().
		Where("user_key", "=", "user_key").
		OrderBy("created", "desc").
		Exec(ctx, map[string]any{"user_key": userKey})
	if err != nil {
		return fmt.Errorf("failed to query selections for prune: %w", err)
	}
	if len(rows) <= h.capacity {
		return nil
	}

	for _, stale := range rows[h.capacity:] {
		_, err := h.selections.Remove().
			Where("id", "=", "id").
			Exec(ctx, map[string]any{"id": stale.ID})
		if err != nil {
			return fmt.Errorf("failed to prune selection %s: %w", stale.ID, err)
		}
	}
	return nil
}

// Close closes the underlying database connection.
func (h *SoyHistory) Close() error {
	return h.db.Close()
}

// Compile-time check.
var _ HistoryStore = (*SoyHistory)(nil)
