package calc

import (
	"math"

	"lg/fitcalc-api/internal/profile"
)

// Atwater factors, kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

const (
	weightLossDeficit = 500
	muscleGainSurplus = 300
)

// MacroSplit is the share of daily calories given to each macronutrient.
type MacroSplit struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

var macroSplits = map[profile.FitnessGoal]MacroSplit{
	profile.LoseWeight: {Protein: 0.40, Carbs: 0.30, Fat: 0.30},
	profile.Maintain:   {Protein: 0.30, Carbs: 0.40, Fat: 0.30},
	profile.GainMuscle: {Protein: 0.35, Carbs: 0.45, Fat: 0.20},
}

// MealPlan is a daily calorie and macro target plus the catalog meals picked
// for the user's dietary preference. The meals are not scaled to hit the
// targets and their calories will not generally add up to DailyCalories.
type MealPlan struct {
	DailyCalories int    `json:"dailyCalories"`
	ProteinTarget int    `json:"proteinTarget"` // g
	CarbsTarget   int    `json:"carbsTarget"`   // g
	FatTarget     int    `json:"fatTarget"`     // g
	MorningMeals  []Meal `json:"morningMeals"`
	EveningMeals  []Meal `json:"eveningMeals"`
	Snacks        []Meal `json:"snacks"`
}

// DailyCalories is TDEE adjusted for the fitness goal.
func DailyCalories(p profile.Profile) int {
	tdee := TDEE(p)
	switch p.FitnessGoal {
	case profile.LoseWeight:
		return tdee - weightLossDeficit
	case profile.GainMuscle:
		return tdee + muscleGainSurplus
	default:
		return tdee
	}
}

// Macros returns the split for goal. An unknown goal gets a zero split and
// therefore zero gram targets.
func Macros(goal profile.FitnessGoal) MacroSplit {
	return macroSplits[goal]
}

// GenerateMealPlan selects meals by dietary preference and sets macro gram
// targets from the goal-adjusted calories. Allergies and meal count are not
// consulted.
func GenerateMealPlan(p profile.Profile) MealPlan {
	kcal := float64(DailyCalories(p))
	split := Macros(p.FitnessGoal)

	return MealPlan{
		DailyCalories: int(kcal),
		ProteinTarget: int(math.Round(kcal * split.Protein / kcalPerGramProtein)),
		CarbsTarget:   int(math.Round(kcal * split.Carbs / kcalPerGramCarbs)),
		FatTarget:     int(math.Round(kcal * split.Fat / kcalPerGramFat)),
		MorningMeals:  Meals(p.DietaryPreference, Morning),
		EveningMeals:  Meals(p.DietaryPreference, Evening),
		Snacks:        Snacks(),
	}
}
