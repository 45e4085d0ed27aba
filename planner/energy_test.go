package planner

import (
	"math"
	"testing"
	"time"
)

func fp(v float64) *float64 { return &v }

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	policy := DefaultMissingDataPolicy()

	tests := []struct {
		name  string
		birth *time.Time
		want  int
	}{
		{
			name:  "birthday already passed this year",
			birth: tp(time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC)),
			want:  36,
		},
		{
			name:  "birthday not yet reached this year",
			birth: tp(time.Date(1990, 11, 20, 0, 0, 0, 0, time.UTC)),
			want:  35,
		},
		{
			name:  "birthday today",
			birth: tp(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)),
			want:  36,
		},
		{
			name:  "missing birth date uses policy default",
			birth: nil,
			want:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ageAt(tt.birth, now, policy); got != tt.want {
				t.Errorf("ageAt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func tp(v time.Time) *time.Time { return &v }

func TestBasalMetabolicRate(t *testing.T) {
	policy := DefaultMissingDataPolicy()

	tests := []struct {
		name    string
		profile Profile
		age     int
		want    float64
	}{
		{
			name:    "male 70kg 170cm age 30",
			profile: Profile{Gender: GenderMale, WeightKG: fp(70), HeightCM: fp(170)},
			age:     30,
			want:    10*70 + 6.25*170 - 5*30 + 5,
		},
		{
			name:    "female 70kg 170cm age 30",
			profile: Profile{Gender: GenderFemale, WeightKG: fp(70), HeightCM: fp(170)},
			age:     30,
			want:    10*70 + 6.25*170 - 5*30 - 161,
		},
		{
			name:    "missing weight and height use policy defaults",
			profile: Profile{Gender: GenderMale},
			age:     30,
			want:    10*70 + 6.25*170 - 5*30 + 5,
		},
		{
			name:    "unspecified gender uses female constant",
			profile: Profile{WeightKG: fp(60), HeightCM: fp(165)},
			age:     40,
			want:    10*60 + 6.25*165 - 5*40 - 161,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basalMetabolicRate(tt.profile, tt.age, policy)
			if got != tt.want {
				t.Errorf("basalMetabolicRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalExpenditure(t *testing.T) {
	const bmr = 1617.5

	tests := []struct {
		level  string
		factor float64
	}{
		{ActivitySedentary, 1.2},
		{ActivityLight, 1.375},
		{ActivityModerate, 1.55},
		{ActivityActive, 1.725},
		{ActivityVeryActive, 1.9},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			want := int(math.Round(bmr * tt.factor))
			if got := totalExpenditure(bmr, tt.level); got != want {
				t.Errorf("totalExpenditure(%s) = %d, want %d", tt.level, got, want)
			}
		})
	}

	t.Run("unrecognized level behaves as moderate", func(t *testing.T) {
		if got, want := totalExpenditure(bmr, "superhuman"), totalExpenditure(bmr, ActivityModerate); got != want {
			t.Errorf("totalExpenditure(unknown) = %d, want %d", got, want)
		}
	})
}

func TestGoalRate(t *testing.T) {
	tests := []struct {
		name    string
		current *float64
		target  *float64
		want    float64
	}{
		{"loss of 5kg capped at 0.85", fp(80), fp(75), 0.85},
		{"loss of 30kg goes below the cap", fp(110), fp(80), 0.70},
		{"gain of 5kg", fp(60), fp(65), 1.05},
		{"gain of 30kg capped at 1.15", fp(50), fp(80), 1.15},
		{"equal weights maintain", fp(70), fp(70), 1},
		{"missing current maintains", nil, fp(70), 1},
		{"missing target maintains", fp(70), nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := goalRate(tt.current, tt.target)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("goalRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdjustForGoal(t *testing.T) {
	// current 80kg, target 75kg: rate is 0.85
	const tdee = 2507
	want := int(math.Round(2507 * 0.85))
	if got := adjustForGoal(tdee, fp(80), fp(75)); got != want {
		t.Errorf("adjustForGoal() = %d, want %d", got, want)
	}

	if got := adjustForGoal(tdee, nil, nil); got != tdee {
		t.Errorf("adjustForGoal() with missing weights = %d, want maintenance %d", got, tdee)
	}
}

func TestDietGoal(t *testing.T) {
	tests := []struct {
		name    string
		current *float64
		target  *float64
		want    string
	}{
		{"target below current", fp(80), fp(75), GoalWeightLoss},
		{"target above current", fp(60), fp(65), GoalWeightGain},
		{"equal", fp(70), fp(70), GoalMaintenance},
		{"missing data", nil, fp(70), GoalMaintenance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dietGoal(tt.current, tt.target); got != tt.want {
				t.Errorf("dietGoal() = %q, want %q", got, tt.want)
			}
		})
	}
}
