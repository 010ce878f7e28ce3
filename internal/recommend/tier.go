package recommend

// Tier is a membership level. It governs which classes a member may book and
// feeds the match scorer.
type Tier string

const (
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
	TierPlatinum Tier = "Platinum"
)

// ParseTier reports whether s names a known tier.
func ParseTier(s string) (Tier, bool) {
	switch Tier(s) {
	case TierStandard, TierPremium, TierPlatinum:
		return Tier(s), true
	}
	return "", false
}

// CanAccess reports whether a member of the given tier may book a class with
// the given required tier. Unknown tiers on either side grant nothing.
func CanAccess(member, required Tier) bool {
	switch member {
	case TierPlatinum:
		return required == TierStandard || required == TierPremium || required == TierPlatinum
	case TierPremium:
		return required == TierStandard || required == TierPremium
	case TierStandard:
		return required == TierStandard
	}
	return false
}

// TierFilter selects either every class or only those a specific tier can
// access. It replaces a nullable tier parameter so that "no filter" is
// always an explicit choice.
type TierFilter struct {
	tier Tier
	all  bool
}

// ForTier filters to classes the given tier can access.
func ForTier(t Tier) TierFilter { return TierFilter{tier: t} }

// AllTiers applies no access filtering (admin/global views).
func AllTiers() TierFilter { return TierFilter{all: true} }

func (f TierFilter) allows(required Tier) bool {
	return f.all || CanAccess(f.tier, required)
}
