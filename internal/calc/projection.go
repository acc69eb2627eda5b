package calc

import (
	"math"

	"lg/fitcalc-api/internal/profile"
)

const (
	loseKGPerWeek     = 0.5
	gainKGPerWeek     = 0.25
	kcalPerStep       = 0.04
	millilitresPerLtr = 1000
)

// extraCaloriesBurned is the daily exercise burn on top of TDEE.
var extraCaloriesBurned = map[profile.ActivityLevel]float64{
	profile.Sedentary:  100,
	profile.Light:      200,
	profile.Moderate:   300,
	profile.Active:     400,
	profile.VeryActive: 500,
}

var workoutsPerWeek = map[profile.ActivityLevel]float64{
	profile.Sedentary:  1,
	profile.Light:      2,
	profile.Moderate:   3,
	profile.Active:     5,
	profile.VeryActive: 6,
}

// ProjectedResults is what the plan is expected to add up to by its last day.
type ProjectedResults struct {
	WeightChange   float64 `json:"weightChange"`   // kg, negative is a loss
	CaloriesBurned float64 `json:"caloriesBurned"` // kcal
	WaterConsumed  float64 `json:"waterConsumed"`  // litres
	StepsTaken     int     `json:"stepsTaken"`
	WorkoutsDone   int     `json:"workoutsDone"`
}

// WeightChange is the projected change in kg over the plan. Maintain and any
// unknown goal project no change.
func WeightChange(p profile.Profile) float64 {
	weeks := float64(p.PlanDuration) / 7
	switch p.FitnessGoal {
	case profile.LoseWeight:
		return -weeks * loseKGPerWeek
	case profile.GainMuscle:
		return weeks * gainKGPerWeek
	default:
		return 0
	}
}

// Project scales the daily targets in p over p.PlanDuration days. Unknown
// activity levels contribute no extra burn and no workouts.
func Project(p profile.Profile) ProjectedResults {
	days := float64(p.PlanDuration)
	stepCalories := float64(p.Steps) * kcalPerStep
	daily := float64(TDEE(p)) + extraCaloriesBurned[p.ActivityLevel] + stepCalories

	return ProjectedResults{
		WeightChange:   WeightChange(p),
		CaloriesBurned: daily * days,
		WaterConsumed:  float64(WaterIntake(p)) * days / millilitresPerLtr,
		StepsTaken:     p.Steps * p.PlanDuration,
		WorkoutsDone:   int(math.Round(days / 7 * workoutsPerWeek[p.ActivityLevel])),
	}
}
