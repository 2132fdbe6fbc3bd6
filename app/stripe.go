package app

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"

	"github.com/kbrown517/Veteran-Compass-Corps/app/config"
	"github.com/kbrown517/Veteran-Compass-Corps/app/models"
)

// InitStripe wires the Stripe API key from configuration. Safe to call
// with an empty key; billing endpoints then fail per request.
func InitStripe(cfg config.StripeConfig) {
	stripe.Key = cfg.SecretKey
}

// ensureStripeCustomer finds or creates a Stripe Customer for the user.
// The customer ID lives on the membership row so webhook events can be
// mapped back to a user without a second lookup table.
func (s *Server) ensureStripeCustomer(ctx context.Context, userID string) (string, error) {
	if s.store == nil {
		return "", errors.New("db not initialized")
	}
	if userID == "" {
		return "", errors.New("missing user id")
	}

	customerID, err := s.store.StripeCustomerID(ctx, userID)
	if err != nil {
		return "", err
	}
	if customerID != "" {
		return customerID, nil
	}

	params := &stripe.CustomerParams{
		Metadata: map[string]string{
			"user_id": userID,
		},
	}
	cust, err := customer.New(params)
	if err != nil {
		return "", err
	}

	if err := s.store.SetStripeCustomerID(ctx, userID, cust.ID); err != nil {
		return "", err
	}
	return cust.ID, nil
}

// StripeCustomerID returns the stored customer ID for a user, or "" when
// the user has no membership row or no customer yet.
func (st *Store) StripeCustomerID(ctx context.Context, userID string) (string, error) {
	var customerID sql.NullString
	err := st.db.QueryRowContext(ctx, `
		SELECT stripe_customer_id
		FROM memberships
		WHERE user_id = $1;
	`, userID).Scan(&customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !customerID.Valid {
		return "", nil
	}
	return customerID.String, nil
}

// SetStripeCustomerID upserts the membership row with the customer ID.
// A fresh row starts canceled; only webhook events grant entitlement.
func (st *Store) SetStripeCustomerID(ctx context.Context, userID, customerID string) error {
	_, err := st.db.ExecContext(ctx, `
		INSERT INTO memberships (user_id, status, stripe_customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id)
		DO UPDATE SET stripe_customer_id = $3, updated_at = now();
	`, userID, models.StatusCanceled, customerID)
	return err
}

// SetMembershipStatusByCustomer updates the membership status for the row
// owning the Stripe customer.
func (st *Store) SetMembershipStatusByCustomer(ctx context.Context, customerID string, status models.MembershipStatus) error {
	if customerID == "" {
		return errors.New("missing stripe customer id")
	}
	_, err := st.db.ExecContext(ctx, `
		UPDATE memberships
		SET status = $1, updated_at = now()
		WHERE stripe_customer_id = $2;
	`, status, customerID)
	return err
}
