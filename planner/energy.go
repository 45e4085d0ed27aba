package planner

import (
	"math"
	"time"
)

// activityFactors maps activity level to its TDEE multiplier. Single source
// of truth for recognized levels; Normalize falls back to moderate for
// anything not listed here.
var activityFactors = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// ageAt returns whole years between birth and now, one less when the
// birthday has not yet occurred this year. Falls back to the policy age
// when the birth date is unknown.
func ageAt(birth *time.Time, now time.Time, policy MissingDataPolicy) int {
	if birth == nil {
		return policy.DefaultAge
	}
	age := now.Year() - birth.Year()
	if now.Before(birth.AddDate(age, 0, 0)) {
		age--
	}
	return age
}

// basalMetabolicRate computes BMR via Mifflin-St Jeor, substituting policy
// defaults for missing weight or height. Any gender other than male uses
// the female constant.
func basalMetabolicRate(p Profile, age int, policy MissingDataPolicy) float64 {
	rate := 10*policy.weight(p) + 6.25*policy.height(p) - 5*float64(age)
	if p.Gender == GenderMale {
		rate += 5
	} else {
		rate -= 161
	}
	return rate
}

// totalExpenditure scales BMR by the activity factor. An unrecognized level
// behaves as moderate, matching the normalizer.
func totalExpenditure(bmr float64, activityLevel string) int {
	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = activityFactors[ActivityModerate]
	}
	return int(math.Round(bmr * factor))
}

// goalRate is the multiplier applied to TDEE for the weight goal: 1% per kg
// of delta, bounded by min() against 0.85 for loss and 1.15 for gain.
// Maintenance (rate 1) when either weight is unknown or they are equal.
func goalRate(current, target *float64) float64 {
	if current == nil || target == nil || *current == *target {
		return 1
	}
	delta := math.Abs(*target - *current)
	if *target < *current {
		return math.Min(0.85, 1-0.01*delta)
	}
	return math.Min(1.15, 1+0.01*delta)
}

// adjustForGoal shifts TDEE toward the client's weight goal.
func adjustForGoal(tdee int, current, target *float64) int {
	return int(math.Round(float64(tdee) * goalRate(current, target)))
}

// Diet goal labels used in plan names and descriptions.
const (
	GoalWeightLoss  = "weight-loss"
	GoalWeightGain  = "weight-gain"
	GoalMaintenance = "maintenance"
)

// dietGoal classifies the weight goal from current vs target weight.
func dietGoal(current, target *float64) string {
	if current == nil || target == nil || *current == *target {
		return GoalMaintenance
	}
	if *target < *current {
		return GoalWeightLoss
	}
	return GoalWeightGain
}
