package models

import "testing"

func TestTierFor(t *testing.T) {
	if TierFor(true) != TierMember || TierFor(false) != TierFree {
		t.Fatal("TierFor mapping broken")
	}
	if !TierMember.IsMember() || TierFree.IsMember() {
		t.Fatal("IsMember mapping broken")
	}
}

func TestTierTablesTotalAndOrdered(t *testing.T) {
	// Every tier must have exactly one limit and one budget, and the
	// member values must strictly exceed the free ones.
	for _, tier := range []Tier{TierFree, TierMember} {
		if tier.MonthlyLimit() <= 0 {
			t.Fatalf("tier %s has no monthly limit", tier)
		}
		if tier.MaxOutputTokens() <= 0 {
			t.Fatalf("tier %s has no output budget", tier)
		}
	}
	if TierMember.MonthlyLimit() <= TierFree.MonthlyLimit() {
		t.Fatal("member monthly limit must exceed free limit")
	}
	if TierMember.MaxOutputTokens() <= TierFree.MaxOutputTokens() {
		t.Fatal("member output budget must exceed free budget")
	}
}

func TestTierValues(t *testing.T) {
	if got := TierFree.MonthlyLimit(); got != 5 {
		t.Fatalf("free monthly limit = %d, want 5", got)
	}
	if got := TierMember.MonthlyLimit(); got != 200 {
		t.Fatalf("member monthly limit = %d, want 200", got)
	}
	if got := TierFree.MaxOutputTokens(); got != 1200 {
		t.Fatalf("free output budget = %d, want 1200", got)
	}
	if got := TierMember.MaxOutputTokens(); got != 2500 {
		t.Fatalf("member output budget = %d, want 2500", got)
	}
}

func TestUnknownTierFallsBackToFree(t *testing.T) {
	unknown := Tier("trial")
	if unknown.MonthlyLimit() != TierFree.MonthlyLimit() {
		t.Fatal("unknown tier limit must fall back to free")
	}
	if unknown.MaxOutputTokens() != TierFree.MaxOutputTokens() {
		t.Fatal("unknown tier budget must fall back to free")
	}
}
