package planner

import "sort"

// The five canonical meal names.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack1    = "Snack1"
	MealSnack2    = "Snack2"
)

var canonicalMealOrder = []string{
	MealBreakfast,
	MealSnack1,
	MealLunch,
	MealSnack2,
	MealDinner,
}

// defaultMealFoods holds the reference food lists. Calorie values are
// illustrative literals and are not rescaled to the computed daily target.
var defaultMealFoods = map[string][]FoodEntry{
	MealBreakfast: {
		{Name: "Oatmeal with milk", Amount: "1 bowl", Calories: 280},
		{Name: "Boiled egg", Amount: "2 pieces", Calories: 155},
		{Name: "Whole-grain toast", Amount: "1 slice", Calories: 80},
	},
	MealSnack1: {
		{Name: "Apple", Amount: "1 medium", Calories: 95},
		{Name: "Almonds", Amount: "10 pieces", Calories: 70},
	},
	MealLunch: {
		{Name: "Grilled chicken breast", Amount: "150 g", Calories: 250},
		{Name: "Bulgur pilaf", Amount: "1 cup", Calories: 220},
		{Name: "Seasonal salad", Amount: "1 plate", Calories: 60},
		{Name: "Yogurt", Amount: "1 bowl", Calories: 100},
	},
	MealSnack2: {
		{Name: "Banana", Amount: "1 medium", Calories: 105},
		{Name: "Walnuts", Amount: "2 whole", Calories: 52},
	},
	MealDinner: {
		{Name: "Baked salmon", Amount: "150 g", Calories: 280},
		{Name: "Steamed vegetables", Amount: "1 plate", Calories: 120},
		{Name: "Brown rice", Amount: "1 cup", Calories: 215},
	},
}

// assembleMeals builds the canonical meals, replacing whole food lists where
// a rule override addresses the same meal name. Overrides addressed to
// non-canonical names are appended after the canonical five; deduplication
// is by exact name match only.
func assembleMeals(overrides map[string][]FoodEntry) []Meal {
	meals := make([]Meal, 0, len(canonicalMealOrder))
	seen := make(map[string]bool, len(canonicalMealOrder))
	for _, name := range canonicalMealOrder {
		foods := defaultMealFoods[name]
		if override, ok := overrides[name]; ok {
			foods = override
		}
		meals = append(meals, Meal{Name: name, Foods: append([]FoodEntry(nil), foods...)})
		seen[name] = true
	}

	extras := make([]string, 0)
	for name := range overrides {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	// Map iteration order is random; sort so plan output is reproducible.
	sort.Strings(extras)
	for _, name := range extras {
		meals = append(meals, Meal{Name: name, Foods: append([]FoodEntry(nil), overrides[name]...)})
	}
	return meals
}
