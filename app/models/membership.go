package models

// MembershipStatus mirrors the billing system's subscription status.
// Lifecycle is owned by Stripe via webhooks; the chat path only reads it.
type MembershipStatus string

const (
	StatusActive   MembershipStatus = "active"
	StatusTrialing MembershipStatus = "trialing"
	StatusCanceled MembershipStatus = "canceled"
)

// Entitled reports whether the status counts as a member for gating.
// Everything outside active/trialing, including an absent record, does not.
func (s MembershipStatus) Entitled() bool {
	return s == StatusActive || s == StatusTrialing
}
