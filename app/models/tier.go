package models

// Tier is the closed set of service tiers. Adding a tier means adding a
// value here and a row to each lookup table.
type Tier string

const (
	TierFree   Tier = "free"
	TierMember Tier = "member"
)

var monthlyLimits = map[Tier]int{
	TierFree:   5,
	TierMember: 200,
}

var outputTokenBudgets = map[Tier]int{
	TierFree:   1200,
	TierMember: 2500,
}

// TierFor maps the membership boolean onto a tier.
func TierFor(isMember bool) Tier {
	if isMember {
		return TierMember
	}
	return TierFree
}

// IsMember reports whether the tier carries an active entitlement.
func (t Tier) IsMember() bool {
	return t == TierMember
}

// MonthlyLimit is the monthly ceiling on chat invocations for the tier.
func (t Tier) MonthlyLimit() int {
	if limit, ok := monthlyLimits[t]; ok {
		return limit
	}
	return monthlyLimits[TierFree]
}

// MaxOutputTokens is the response-length budget for the tier.
func (t Tier) MaxOutputTokens() int {
	if budget, ok := outputTokenBudgets[t]; ok {
		return budget
	}
	return outputTokenBudgets[TierFree]
}
