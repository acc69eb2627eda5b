package calc

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lg/fitcalc-api/internal/profile"
)

func mealNames(meals []Meal) []string {
	names := make([]string, 0, len(meals))
	for _, m := range meals {
		names = append(names, m.Name)
	}
	return names
}

/* ─── Calorie and macro targets ──────────────────────────────────────── */

// TestGenerateMealPlan_Targets uses TDEE 2556 (male, 70 kg, 175 cm, 30,
// moderate) for every goal.
func TestGenerateMealPlan_Targets(t *testing.T) {
	cases := []struct {
		goal                   profile.FitnessGoal
		calories               int
		protein, carbs, fatTgt int
	}{
		{profile.LoseWeight, 2056, 206, 154, 69},
		{profile.Maintain, 2556, 192, 256, 85},
		{profile.GainMuscle, 2856, 250, 321, 63},
		{profile.FitnessGoal("shred"), 2556, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.goal), func(t *testing.T) {
			p := makeProfile(profile.Male, 30, 70, 175, profile.Moderate)
			p.FitnessGoal = tc.goal
			plan := GenerateMealPlan(p)
			if plan.DailyCalories != tc.calories {
				t.Errorf("DailyCalories = %d, want %d", plan.DailyCalories, tc.calories)
			}
			if plan.ProteinTarget != tc.protein || plan.CarbsTarget != tc.carbs || plan.FatTarget != tc.fatTgt {
				t.Errorf("targets = %d/%d/%d, want %d/%d/%d",
					plan.ProteinTarget, plan.CarbsTarget, plan.FatTarget, tc.protein, tc.carbs, tc.fatTgt)
			}
		})
	}
}

/* ─── Catalog selection ──────────────────────────────────────────────── */

func TestGenerateMealPlan_Vegan(t *testing.T) {
	p := makeProfile(profile.Female, 28, 60, 165, profile.Light)
	p.DietaryPreference = profile.Vegan
	plan := GenerateMealPlan(p)

	wantMorning := []string{"Tofu Scramble", "Chia Pudding", "Protein-Packed Oatmeal"}
	if diff := cmp.Diff(wantMorning, mealNames(plan.MorningMeals)); diff != "" {
		t.Errorf("morning meals mismatch (-want +got):\n%s", diff)
	}
	wantEvening := []string{"Buddha Bowl", "Tempeh Stir Fry", "Lentil Shepherd's Pie"}
	if diff := cmp.Diff(wantEvening, mealNames(plan.EveningMeals)); diff != "" {
		t.Errorf("evening meals mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(catalog[catalogKey{profile.Vegan, Morning}], plan.MorningMeals); diff != "" {
		t.Errorf("morning meals differ from catalog (-want +got):\n%s", diff)
	}
}

// TestGenerateMealPlan_SnacksShared verifies every preference gets the same
// four snacks.
func TestGenerateMealPlan_SnacksShared(t *testing.T) {
	want := []string{"Greek Yogurt with Berries", "Apple with Almond Butter", "Protein Shake", "Veggie Sticks with Hummus"}
	prefs := []profile.DietaryPreference{
		profile.Vegetarian, profile.NonVegetarian, profile.Vegan, profile.Indian, "pescatarian",
	}
	for _, pref := range prefs {
		p := makeProfile(profile.Male, 30, 70, 175, profile.Moderate)
		p.DietaryPreference = pref
		if diff := cmp.Diff(want, mealNames(GenerateMealPlan(p).Snacks)); diff != "" {
			t.Errorf("%s snacks mismatch (-want +got):\n%s", pref, diff)
		}
	}
}

func TestGenerateMealPlan_EachPreferenceHasThreeMeals(t *testing.T) {
	firsts := map[profile.DietaryPreference][2]string{
		profile.Vegetarian:    {"Greek Yogurt Breakfast Bowl", "Lentil and Vegetable Curry"},
		profile.NonVegetarian: {"Protein-Packed Breakfast", "Grilled Chicken with Quinoa"},
		profile.Vegan:         {"Tofu Scramble", "Buddha Bowl"},
		profile.Indian:        {"Masala Dosa with Sambar", "Chana Masala with Brown Rice"},
	}
	for pref, first := range firsts {
		p := makeProfile(profile.Male, 30, 70, 175, profile.Moderate)
		p.DietaryPreference = pref
		plan := GenerateMealPlan(p)
		if len(plan.MorningMeals) != 3 || len(plan.EveningMeals) != 3 {
			t.Fatalf("%s: got %d morning / %d evening meals, want 3/3", pref, len(plan.MorningMeals), len(plan.EveningMeals))
		}
		if plan.MorningMeals[0].Name != first[0] || plan.EveningMeals[0].Name != first[1] {
			t.Errorf("%s: first meals = %q/%q, want %q/%q",
				pref, plan.MorningMeals[0].Name, plan.EveningMeals[0].Name, first[0], first[1])
		}
	}
}

// TestGenerateMealPlan_UnknownPreference returns empty, non-nil lists so they
// encode as [] rather than null.
func TestGenerateMealPlan_UnknownPreference(t *testing.T) {
	p := makeProfile(profile.Male, 30, 70, 175, profile.Moderate)
	p.DietaryPreference = "keto"
	plan := GenerateMealPlan(p)
	if plan.MorningMeals == nil || len(plan.MorningMeals) != 0 {
		t.Errorf("MorningMeals = %#v, want empty non-nil", plan.MorningMeals)
	}
	if plan.EveningMeals == nil || len(plan.EveningMeals) != 0 {
		t.Errorf("EveningMeals = %#v, want empty non-nil", plan.EveningMeals)
	}
}

// TestGenerateMealPlan_IgnoresAllergiesAndMealCount verifies neither field
// changes the plan.
func TestGenerateMealPlan_IgnoresAllergiesAndMealCount(t *testing.T) {
	base := makeProfile(profile.Male, 30, 70, 175, profile.Moderate)
	other := base.Clone()
	other.Allergies = []string{"dairy", "nuts"}
	other.MealCount = 6
	if diff := cmp.Diff(GenerateMealPlan(base), GenerateMealPlan(other)); diff != "" {
		t.Errorf("plan changed with allergies/meal count (-base +other):\n%s", diff)
	}
}

// TestMeals_ReturnsCopy verifies callers cannot edit the shared catalog.
func TestMeals_ReturnsCopy(t *testing.T) {
	meals := Meals(profile.Indian, Evening)
	meals[0].Calories = 1
	snack := Snacks()
	snack[0].Name = "changed"

	if catalog[catalogKey{profile.Indian, Evening}][0].Calories != 460 {
		t.Error("catalog was modified through the returned slice")
	}
	if snacks[0].Name != "Greek Yogurt with Berries" {
		t.Error("snack catalog was modified through the returned slice")
	}
}
