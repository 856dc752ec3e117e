// Package entity contains the core business objects of the project.
package entity

// TierType tags one of the three pricing tiers of an offer.
type TierType string

const (
	// TierBasic is the entry-level tier.
	TierBasic TierType = "basic"
	// TierStandard is the mid tier.
	TierStandard TierType = "standard"
	// TierPremium is the top tier.
	TierPremium TierType = "premium"
)

// String returns the string representation of the TierType.
func (t TierType) String() string {
	return string(t)
}

// IsValid checks if the TierType is a valid value.
func (t TierType) IsValid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium:
		return true
	default:
		return false
	}
}

// RequiredTiers lists the tier set every offer must carry, exactly once each.
func RequiredTiers() []TierType {
	return []TierType{TierBasic, TierStandard, TierPremium}
}

// IsCompleteTierSet reports whether the given tags form exactly the set
// {basic, standard, premium} with no duplicates.
func IsCompleteTierSet(tiers []TierType) bool {
	if len(tiers) != len(RequiredTiers()) {
		return false
	}

	seen := make(map[TierType]bool, len(tiers))
	for _, tier := range tiers {
		if !tier.IsValid() || seen[tier] {
			return false
		}
		seen[tier] = true
	}

	return true
}
