package planner

// Macros is the gram allocation derived from a daily calorie target.
type Macros struct {
	ProteinGrams int `json:"protein_grams"`
	CarbGrams    int `json:"carb_grams"`
	FatGrams     int `json:"fat_grams"`
}

// NutritionTarget is the daily energy and macro goal for a client.
type NutritionTarget struct {
	DailyCalories int    `json:"daily_calories"`
	Macros        Macros `json:"macros"`
}

// FoodEntry is a single food within a meal. Amount is a free-text quantity
// description ("1 bowl", "150 g").
type FoodEntry struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Calories int    `json:"calories"`
}

// Meal is a named, ordered list of foods.
type Meal struct {
	Name  string      `json:"name"`
	Foods []FoodEntry `json:"foods"`
}

// MealPlan is the complete output of a planning run: a named, described
// plan with its nutrition target and ordered meals. Plain data only; the
// caller decides whether and where to persist it.
type MealPlan struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Target      NutritionTarget `json:"nutrition_target"`
	Meals       []Meal          `json:"meals"`
}
