package planner

import (
	"fmt"
	"math"
	"strings"
)

// bmiBands pairs an exclusive upper bound with a classification and a canned
// recommendation. Walked in order; the final band catches everything else.
var bmiBands = []struct {
	upper  float64
	label  string
	advice string
}{
	{18.5, "underweight", "A controlled calorie surplus with nutrient-dense foods is recommended to reach a healthy weight."},
	{25, "normal", "Current weight is in the healthy range; the plan focuses on maintaining balanced habits."},
	{30, "overweight", "A moderate calorie deficit combined with regular activity is recommended."},
	{35, "obese (class I)", "A structured calorie deficit and gradually increased activity are recommended; progress should be reviewed monthly."},
	{40, "obese (class II)", "A supervised weight-loss program is recommended alongside this plan."},
	{math.MaxFloat64, "obese (class III)", "Medical supervision is strongly recommended before and during any weight-loss effort."},
}

func classifyBMI(bmi float64) (label, advice string) {
	for _, band := range bmiBands {
		if bmi < band.upper {
			return band.label, band.advice
		}
	}
	last := bmiBands[len(bmiBands)-1]
	return last.label, last.advice
}

// composePlan assembles the final MealPlan: name from the inferred diet goal
// plus matched qualifiers, and a description built from the profile summary,
// the BMI statement, the rule narratives and a macro summary.
func composePlan(p Profile, age int, calories int, macros Macros, split MacroSplit, outcome RuleOutcome, meals []Meal, policy MissingDataPolicy) MealPlan {
	goal := dietGoal(p.WeightKG, p.TargetKG)

	nameParts := append([]string{goal}, outcome.Qualifiers...)
	name := strings.Join(nameParts, " ") + " plan"

	weight := policy.weight(p)
	height := policy.height(p)

	var goalText string
	switch goal {
	case GoalWeightLoss:
		goalText = fmt.Sprintf("losing %.1f kg", *p.WeightKG-*p.TargetKG)
	case GoalWeightGain:
		goalText = fmt.Sprintf("gaining %.1f kg", *p.TargetKG-*p.WeightKG)
	default:
		goalText = "maintaining current weight"
	}

	parts := make([]string, 0, 4+len(outcome.Narratives))
	parts = append(parts, fmt.Sprintf(
		"Based on age %d, height %.0f cm and weight %.1f kg, the daily target is %d kcal for %s.",
		age, height, weight, calories, goalText))

	bmi := weight / math.Pow(height/100, 2)
	label, advice := classifyBMI(bmi)
	parts = append(parts, fmt.Sprintf("BMI is %.1f (%s). %s", bmi, label, advice))

	parts = append(parts, outcome.Narratives...)

	parts = append(parts, fmt.Sprintf(
		"Daily macros: %d g protein (%.0f%%), %d g carbohydrate (%.0f%%), %d g fat (%.0f%%).",
		macros.ProteinGrams, split.Protein*100,
		macros.CarbGrams, split.Carb*100,
		macros.FatGrams, split.Fat*100))

	return MealPlan{
		Name:        name,
		Description: strings.Join(parts, " "),
		Target: NutritionTarget{
			DailyCalories: calories,
			Macros:        macros,
		},
		Meals: meals,
	}
}
