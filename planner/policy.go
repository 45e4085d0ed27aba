package planner

// MissingDataPolicy names the population-average values substituted when a
// profile is missing physiology fields. The normalizer leaves missing fields
// absent; substitution happens in the calculators against this policy, so
// the defaulting choice lives in exactly one place.
type MissingDataPolicy struct {
	DefaultAge      int
	DefaultWeightKG float64
	DefaultHeightCM float64
}

// DefaultMissingDataPolicy returns the standard adult reference values.
func DefaultMissingDataPolicy() MissingDataPolicy {
	return MissingDataPolicy{
		DefaultAge:      30,
		DefaultWeightKG: 70,
		DefaultHeightCM: 170,
	}
}

func (p MissingDataPolicy) weight(profile Profile) float64 {
	if profile.WeightKG != nil {
		return *profile.WeightKG
	}
	return p.DefaultWeightKG
}

func (p MissingDataPolicy) height(profile Profile) float64 {
	if profile.HeightCM != nil {
		return *profile.HeightCM
	}
	return p.DefaultHeightCM
}
