package planner

import "math"

var (
	// baselineSplit is the default macro distribution.
	baselineSplit = MacroSplit{Protein: 0.30, Fat: 0.25, Carb: 0.45}
	// highActivitySplit applies to active and very_active clients.
	highActivitySplit = MacroSplit{Protein: 0.35, Fat: 0.20, Carb: 0.45}
)

// macroSplitFor resolves the final percentage split. Precedence is fixed:
// baseline, then activity level, then the medical rule override. Later
// stages replace earlier ones.
func macroSplitFor(activityLevel string, ruleSplit *MacroSplit) MacroSplit {
	split := baselineSplit
	if activityLevel == ActivityActive || activityLevel == ActivityVeryActive {
		split = highActivitySplit
	}
	if ruleSplit != nil {
		split = *ruleSplit
	}
	return split
}

// Kcal per gram of each macronutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// allocateMacros converts the split into grams. Rounding means the grams do
// not reconstruct the calorie target exactly; the deviation stays under 1%.
func allocateMacros(calories int, split MacroSplit) Macros {
	c := float64(calories)
	return Macros{
		ProteinGrams: int(math.Round(c * split.Protein / kcalPerGramProtein)),
		CarbGrams:    int(math.Round(c * split.Carb / kcalPerGramCarb)),
		FatGrams:     int(math.Round(c * split.Fat / kcalPerGramFat)),
	}
}
