package planner

import (
	"reflect"
	"testing"
)

func TestAssembleMealsDefaults(t *testing.T) {
	meals := assembleMeals(nil)

	if len(meals) != 5 {
		t.Fatalf("expected 5 canonical meals, got %d", len(meals))
	}
	for i, name := range canonicalMealOrder {
		if meals[i].Name != name {
			t.Errorf("meal %d = %q, want %q", i, meals[i].Name, name)
		}
		if !reflect.DeepEqual(meals[i].Foods, defaultMealFoods[name]) {
			t.Errorf("meal %q does not carry its default food list", name)
		}
	}
}

func TestAssembleMealsOverrideReplacesWholeList(t *testing.T) {
	override := []FoodEntry{{Name: "Tofu scramble", Amount: "1 plate", Calories: 220}}
	meals := assembleMeals(map[string][]FoodEntry{MealBreakfast: override})

	if !reflect.DeepEqual(meals[0].Foods, override) {
		t.Errorf("Breakfast = %v, want the override list (no merge)", meals[0].Foods)
	}
	// Untouched meals keep their defaults.
	if !reflect.DeepEqual(meals[2].Foods, defaultMealFoods[MealLunch]) {
		t.Errorf("Lunch should keep its default food list")
	}
}

func TestAssembleMealsNonCanonicalOverrideAppends(t *testing.T) {
	override := []FoodEntry{{Name: "Protein shake", Amount: "1 glass", Calories: 180}}
	meals := assembleMeals(map[string][]FoodEntry{"Brunch": override})

	if len(meals) != 6 {
		t.Fatalf("expected canonical 5 plus the extra meal, got %d", len(meals))
	}
	last := meals[len(meals)-1]
	if last.Name != "Brunch" || !reflect.DeepEqual(last.Foods, override) {
		t.Errorf("extra meal = %+v, want Brunch with the override list", last)
	}
	// Canonical meals are all still present; dedupe is by exact name only.
	for i, name := range canonicalMealOrder {
		if meals[i].Name != name {
			t.Errorf("meal %d = %q, want %q", i, meals[i].Name, name)
		}
	}
}

func TestAssembleMealsDoesNotAliasTemplates(t *testing.T) {
	meals := assembleMeals(nil)
	meals[0].Foods[0].Calories = 9999

	if defaultMealFoods[MealBreakfast][0].Calories == 9999 {
		t.Error("mutating an assembled meal leaked into the shared template")
	}
}
