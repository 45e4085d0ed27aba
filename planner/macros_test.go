package planner

import (
	"math"
	"testing"
)

func TestMacroSplitAlwaysSumsToOne(t *testing.T) {
	activities := []string{
		ActivitySedentary, ActivityLight, ActivityModerate,
		ActivityActive, ActivityVeryActive,
	}

	overrides := []*MacroSplit{nil}
	for _, rule := range DefaultRules() {
		if rule.Macros != nil {
			overrides = append(overrides, rule.Macros)
		}
	}

	for _, activity := range activities {
		for i, override := range overrides {
			split := macroSplitFor(activity, override)
			sum := split.Protein + split.Fat + split.Carb
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("activity %s override %d: percentages sum to %v, want 1.0",
					activity, i, sum)
			}
		}
	}
}

func TestMacroSplitPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		override *MacroSplit
		want     MacroSplit
	}{
		{"baseline", ActivityModerate, nil, baselineSplit},
		{"active raises protein", ActivityActive, nil, highActivitySplit},
		{"very active raises protein", ActivityVeryActive, nil, highActivitySplit},
		{
			"medical override beats activity",
			ActivityVeryActive,
			&MacroSplit{Protein: 0.35, Fat: 0.30, Carb: 0.35},
			MacroSplit{Protein: 0.35, Fat: 0.30, Carb: 0.35},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := macroSplitFor(tt.activity, tt.override); got != tt.want {
				t.Errorf("macroSplitFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAllocateMacrosReconstructsCaloriesWithinOnePercent(t *testing.T) {
	for _, calories := range []int{1200, 1850, 2507, 3400} {
		macros := allocateMacros(calories, baselineSplit)
		reconstructed := macros.ProteinGrams*kcalPerGramProtein +
			macros.CarbGrams*kcalPerGramCarb +
			macros.FatGrams*kcalPerGramFat
		deviation := math.Abs(float64(reconstructed-calories)) / float64(calories)
		if deviation > 0.01 {
			t.Errorf("calories %d: grams reconstruct to %d (%.2f%% off)",
				calories, reconstructed, deviation*100)
		}
	}
}

func TestAllocateMacrosGramArithmetic(t *testing.T) {
	macros := allocateMacros(2000, MacroSplit{Protein: 0.30, Fat: 0.25, Carb: 0.45})

	if want := int(math.Round(2000 * 0.30 / 4)); macros.ProteinGrams != want {
		t.Errorf("ProteinGrams = %d, want %d", macros.ProteinGrams, want)
	}
	if want := int(math.Round(2000 * 0.45 / 4)); macros.CarbGrams != want {
		t.Errorf("CarbGrams = %d, want %d", macros.CarbGrams, want)
	}
	if want := int(math.Round(2000 * 0.25 / 9)); macros.FatGrams != want {
		t.Errorf("FatGrams = %d, want %d", macros.FatGrams, want)
	}
}
