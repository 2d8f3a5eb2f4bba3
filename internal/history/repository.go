// Package history keeps a local log of the go/no-go checks the pilot ran.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ngmaloney/preflight-terminal/internal/models"
	"github.com/ngmaloney/preflight-terminal/pkg/logger"
)

// Entry is one recorded check
type Entry struct {
	ID          int64
	Status      models.Status
	Score       int
	Departure   string
	Destination string
	TitleLine   string
	CreatedAt   time.Time
	Decision    models.Decision
}

// Route formats the entry's route for display
func (e Entry) Route() string {
	dep, dest := e.Departure, e.Destination
	if dep == "" {
		dep = "----"
	}
	if dest == "" {
		dest = "----"
	}
	return dep + " → " + dest
}

// Log records decisions in the flight_checks table
type Log struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLog creates a history log on an open database
func NewLog(db *sql.DB, log *logger.Logger) *Log {
	return &Log{
		db:     db,
		logger: log.Named("history"),
	}
}

// Record appends d to the log
func (l *Log) Record(ctx context.Context, d models.Decision) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encoding decision: %w", err)
	}

	_, err = l.db.ExecContext(ctx, `
		INSERT INTO flight_checks (status, score, departure, destination, title_line, decision_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		string(d.Status),
		d.Score,
		d.Tech.Inputs.Departure,
		d.Tech.Inputs.Destination,
		d.TitleLine,
		string(data),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording flight check: %w", err)
	}

	l.logger.Debug("Flight check recorded",
		logger.String("status", string(d.Status)),
		logger.Int("score", d.Score))
	return nil
}

// Recent returns up to limit entries, newest first
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, status, score, departure, destination, title_line, decision_json, created_at
		FROM flight_checks
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying flight checks: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var status, raw string
		var dep, dest sql.NullString

		if err := rows.Scan(&e.ID, &status, &e.Score, &dep, &dest, &e.TitleLine, &raw, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning flight check: %w", err)
		}
		e.Status = models.Status(status)
		e.Departure = dep.String
		e.Destination = dest.String

		if err := json.Unmarshal([]byte(raw), &e.Decision); err != nil {
			l.logger.Warn("Skipping unreadable flight check",
				logger.Int("id", int(e.ID)), logger.Error(err))
			continue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading flight checks: %w", err)
	}

	return entries, nil
}
