package planner

import "strings"

// MacroSplit is a percentage split of daily calories. Fields are fractions
// and must sum to 1.
type MacroSplit struct {
	Protein float64
	Fat     float64
	Carb    float64
}

// ConditionRule matches a client's condition or restriction tags and
// contributes effects to the plan. Rules are evaluated in table order;
// narrative fragments accumulate, while macro and meal overrides from a
// later rule replace those of an earlier one.
type ConditionRule struct {
	// Qualifier is appended to the plan name when the rule matches.
	Qualifier string
	// Medical rules match condition tags and may override the macro split.
	// Dietary rules match restriction tags and may override meal food lists.
	Medical bool
	// Keywords are matched case-insensitively as substrings of each tag.
	Keywords  []string
	Narrative string
	Macros    *MacroSplit
	Meals     map[string][]FoodEntry
}

func (r ConditionRule) matches(tags []string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// RuleOutcome accumulates the effects of every matched rule, in table order.
type RuleOutcome struct {
	Qualifiers    []string
	Narratives    []string
	Macros        *MacroSplit
	MealOverrides map[string][]FoodEntry
}

// evaluateRules walks the table once. When two rules override the same meal
// name, the later rule wins outright; the same holds for macro overrides.
func evaluateRules(rules []ConditionRule, p Profile) RuleOutcome {
	out := RuleOutcome{MealOverrides: make(map[string][]FoodEntry)}
	for _, rule := range rules {
		tags := p.Restrictions
		if rule.Medical {
			tags = p.Conditions
		}
		if !rule.matches(tags) {
			continue
		}
		out.Qualifiers = append(out.Qualifiers, rule.Qualifier)
		out.Narratives = append(out.Narratives, rule.Narrative)
		if rule.Medical && rule.Macros != nil {
			split := *rule.Macros
			out.Macros = &split
		}
		for meal, foods := range rule.Meals {
			out.MealOverrides[meal] = append([]FoodEntry(nil), foods...)
		}
	}
	return out
}

// DefaultRules returns the built-in condition table. Medical rules come
// first, then dietary rules; within each group order decides conflicts.
func DefaultRules() []ConditionRule {
	return []ConditionRule{
		{
			Qualifier: "diabetic",
			Medical:   true,
			Keywords:  []string{"diabet", "sugar"},
			Narrative: "Refined sugar is excluded and carbohydrates come from low-glycemic sources to keep blood glucose stable.",
			Macros:    &MacroSplit{Protein: 0.35, Fat: 0.30, Carb: 0.35},
		},
		{
			Qualifier: "low-sodium",
			Medical:   true,
			Keywords:  []string{"hypertension", "blood pressure"},
			Narrative: "Sodium is restricted: no added table salt, and processed or pickled foods are excluded.",
		},
		{
			Qualifier: "low-cholesterol",
			Medical:   true,
			Keywords:  []string{"cholesterol"},
			Narrative: "Saturated fat is limited in favor of unsaturated sources, and red meat is reduced to once a week.",
			Macros:    &MacroSplit{Protein: 0.35, Fat: 0.20, Carb: 0.45},
		},
		{
			Qualifier: "vegan",
			Medical:   false,
			Keywords:  []string{"vegan"},
			Narrative: "All animal products are replaced with plant-based protein sources such as legumes, tofu and nuts.",
			Meals: map[string][]FoodEntry{
				MealBreakfast: {
					{Name: "Oatmeal with soy milk", Amount: "1 bowl", Calories: 260},
					{Name: "Peanut butter", Amount: "1 tbsp", Calories: 95},
					{Name: "Banana", Amount: "1 medium", Calories: 105},
				},
				MealLunch: {
					{Name: "Chickpea stew", Amount: "1 plate", Calories: 310},
					{Name: "Quinoa", Amount: "1 cup", Calories: 220},
					{Name: "Seasonal salad with olive oil", Amount: "1 plate", Calories: 110},
				},
				MealDinner: {
					{Name: "Grilled tofu", Amount: "150 g", Calories: 180},
					{Name: "Steamed vegetables", Amount: "1 plate", Calories: 120},
					{Name: "Brown rice", Amount: "1 cup", Calories: 215},
				},
			},
		},
		{
			Qualifier: "vegetarian",
			Medical:   false,
			Keywords:  []string{"vegetarian"},
			Narrative: "Meat and fish are replaced with egg, dairy and legume proteins.",
			Meals: map[string][]FoodEntry{
				MealLunch: {
					{Name: "Lentil soup", Amount: "1 bowl", Calories: 180},
					{Name: "Cheese omelette", Amount: "2 eggs", Calories: 280},
					{Name: "Seasonal salad", Amount: "1 plate", Calories: 60},
				},
				MealDinner: {
					{Name: "Vegetable casserole with eggs", Amount: "1 portion", Calories: 320},
					{Name: "Yogurt", Amount: "1 bowl", Calories: 100},
					{Name: "Whole-grain bread", Amount: "1 slice", Calories: 80},
				},
			},
		},
		{
			Qualifier: "gluten-free",
			Medical:   false,
			Keywords:  []string{"gluten", "celiac", "coeliac"},
			Narrative: "Wheat, barley and rye products are replaced with certified gluten-free alternatives.",
			Meals: map[string][]FoodEntry{
				MealBreakfast: {
					{Name: "Gluten-free oat porridge", Amount: "1 bowl", Calories: 270},
					{Name: "Boiled egg", Amount: "2 pieces", Calories: 155},
					{Name: "Gluten-free toast", Amount: "1 slice", Calories: 90},
				},
			},
		},
		{
			Qualifier: "lactose-free",
			Medical:   false,
			Keywords:  []string{"lactose"},
			Narrative: "Dairy is replaced with lactose-free or plant-based alternatives.",
			Meals: map[string][]FoodEntry{
				MealSnack2: {
					{Name: "Lactose-free yogurt", Amount: "1 bowl", Calories: 110},
					{Name: "Walnuts", Amount: "2 whole", Calories: 52},
				},
			},
		},
	}
}
