package filterstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tripfinder/internal/listing"
	"tripfinder/pkg/db"
)

const (
	loadStateQuery = `SELECT state FROM filter_state
WHERE session_id = $1 AND context = $2 AND (expires_at IS NULL OR expires_at > now())`

	saveStateQuery = `INSERT INTO filter_state (session_id, context, state, expires_at, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (session_id, context)
DO UPDATE SET state = EXCLUDED.state, expires_at = EXCLUDED.expires_at, updated_at = now()`

	clearStateQuery = `DELETE FROM filter_state WHERE session_id = $1 AND context = $2`
)

// SQLAdapter keeps one row per tab and listing page in the filter_state table.
type SQLAdapter struct {
	db        db.SQLExecutor
	sessionID string
	profile   listing.Profile
	ttl       time.Duration
	now       func() time.Time
}

func NewSQLAdapter(exec db.SQLExecutor, sessionID string, profile listing.Profile, ttl time.Duration) *SQLAdapter {
	return &SQLAdapter{
		db:        exec,
		sessionID: sessionID,
		profile:   profile,
		ttl:       ttl,
		now:       time.Now,
	}
}

// SQLOpener opens SQLAdapters that share exec.
func SQLOpener(exec db.SQLExecutor, ttl time.Duration) Opener {
	return func(sessionID string, profile listing.Profile) PersistenceAdapter {
		return NewSQLAdapter(exec, sessionID, profile, ttl)
	}
}

func (a *SQLAdapter) Load(ctx context.Context) (FilterState, error) {
	var raw []byte
	err := a.db.QueryRowContext(ctx, loadStateQuery, a.sessionID, a.profile.Name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("load session %s: %w", a.sessionID, err)
	}

	state := Default()
	if err := json.Unmarshal(raw, &state); err != nil {
		return Default(), fmt.Errorf("decode session %s: %w", a.sessionID, err)
	}
	if !a.profile.RatingEnabled {
		state.Rating = listing.All
	}
	if state.Page < 1 {
		state.Page = 1
	}
	return state, nil
}

func (a *SQLAdapter) Save(ctx context.Context, state FilterState) error {
	body, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", a.sessionID, err)
	}

	var expiresAt *time.Time
	if a.ttl > 0 {
		t := a.now().Add(a.ttl)
		expiresAt = &t
	}

	if _, err := a.db.ExecContext(ctx, saveStateQuery, a.sessionID, a.profile.Name, string(body), expiresAt); err != nil {
		return fmt.Errorf("save session %s: %w", a.sessionID, err)
	}
	return nil
}

func (a *SQLAdapter) Clear(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, clearStateQuery, a.sessionID, a.profile.Name); err != nil {
		return fmt.Errorf("clear session %s: %w", a.sessionID, err)
	}
	return nil
}
