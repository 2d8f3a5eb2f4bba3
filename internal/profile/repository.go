// Package profile persists the pilot profile.
package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/preflight-terminal/internal/models"
	"github.com/ngmaloney/preflight-terminal/pkg/logger"
)

// StorageKey is the fixed, versioned key the profile is stored under
const StorageKey = "pilotready.profile.v1"

// Store loads and saves the single pilot profile
type Store interface {
	// Load returns the saved profile, or false when none is usable
	Load(ctx context.Context) (models.PilotProfile, bool)
	Save(ctx context.Context, p models.PilotProfile) error
	Clear(ctx context.Context) error
}

// Repository stores the profile as a JSON document in the kv_store table
type Repository struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewRepository creates a profile repository on an open database
func NewRepository(db *sql.DB, log *logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: log.Named("profile-store"),
	}
}

// Load fails soft: a missing row, a database error and unreadable JSON all
// come back as "no profile".
func (r *Repository) Load(ctx context.Context) (models.PilotProfile, bool) {
	var raw string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", StorageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PilotProfile{}, false
	}
	if err != nil {
		r.logger.Warn("Failed to read stored profile", logger.Error(err))
		return models.PilotProfile{}, false
	}

	var p models.PilotProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		r.logger.Warn("Stored profile is unreadable, ignoring it", logger.Error(err))
		return models.PilotProfile{}, false
	}

	return p, true
}

// Save replaces the stored profile
func (r *Repository) Save(ctx context.Context, p models.PilotProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, StorageKey, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	r.logger.Debug("Profile saved", logger.String("key", StorageKey))
	return nil
}

// Clear removes the stored profile
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", StorageKey); err != nil {
		return fmt.Errorf("clearing profile: %w", err)
	}
	return nil
}
