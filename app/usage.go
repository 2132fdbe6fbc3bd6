// Monthly AI usage accounting. One row per (user, month); the month key
// rolls the count over implicitly because a new month reads a new row.
package app

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"
)

// UsageStore reads and increments the monthly invocation count.
type UsageStore interface {
	UsageCount(ctx context.Context, userID, month string) (int, error)
	IncrementUsage(ctx context.Context, userID, month string) error
}

// monthKey buckets a point in time into the calendar-month form the
// ledger is keyed by, e.g. "2026-09". Computed in UTC so the boundary
// does not depend on server locale.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// readUsage returns the current count for (user, month). It never fails:
// a missing row, an unreachable ledger, or no ledger at all reads as zero.
func (s *Server) readUsage(ctx context.Context, userID, month string) int {
	if s.usage == nil {
		return 0
	}
	count, err := s.usage.UsageCount(ctx, userID, month)
	if err != nil {
		log.Printf("usage read failed user=%s month=%s err=%v", userID, month, err)
		return 0
	}
	return count
}

// recordUsage increments the count for (user, month), creating the row on
// first use. Best effort: persistence failures are logged and reported as
// false, never raised. The quota gate has already run on the pre-increment
// count, so a lost increment under-counts rather than blocking the user.
func (s *Server) recordUsage(ctx context.Context, userID, month string) bool {
	if s.usage == nil {
		return false
	}
	if err := s.usage.IncrementUsage(ctx, userID, month); err != nil {
		log.Printf("usage increment failed user=%s month=%s err=%v", userID, month, err)
		return false
	}
	return true
}

// UsageCount returns the stored count for the month, zero when no row exists.
func (st *Store) UsageCount(ctx context.Context, userID, month string) (int, error) {
	var count int
	err := st.db.QueryRowContext(ctx, `
		SELECT count
		FROM ai_usage
		WHERE user_id = $1 AND month = $2;
	`, userID, month).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

// IncrementUsage bumps the month's count atomically, inserting the row on
// first use. Atomicity lives in the upsert: concurrent requests from one
// user may both pass the read-side gate near the limit, but no increment
// is ever lost to a race.
func (st *Store) IncrementUsage(ctx context.Context, userID, month string) error {
	_, err := st.db.ExecContext(ctx, `
		INSERT INTO ai_usage (user_id, month, count, created_at, updated_at)
		VALUES ($1, $2, 1, now(), now())
		ON CONFLICT (user_id, month)
		DO UPDATE SET count = ai_usage.count + 1, updated_at = now();
	`, userID, month)
	return err
}
