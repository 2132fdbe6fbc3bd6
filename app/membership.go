// Membership tier resolution against the billing-owned memberships table.
package app

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/kbrown517/Veteran-Compass-Corps/app/models"
)

// MembershipStore reads the current membership status for a user.
type MembershipStore interface {
	MembershipStatus(ctx context.Context, userID string) (models.MembershipStatus, error)
}

// resolveTier maps a user onto a service tier. Any lookup failure, a
// missing record, or a missing store resolves to the free tier: an
// ambiguous read must never grant member access.
func (s *Server) resolveTier(ctx context.Context, userID string) models.Tier {
	if s.members == nil {
		return models.TierFree
	}
	status, err := s.members.MembershipStatus(ctx, userID)
	if err != nil {
		log.Printf("membership lookup failed user=%s err=%v", userID, err)
		return models.TierFree
	}
	return models.TierFor(status.Entitled())
}

// MembershipStatus returns the most recent status for the user, or the
// empty status when no record exists.
func (st *Store) MembershipStatus(ctx context.Context, userID string) (models.MembershipStatus, error) {
	var status models.MembershipStatus
	err := st.db.QueryRowContext(ctx, `
		SELECT status
		FROM memberships
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1;
	`, userID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return status, nil
}
