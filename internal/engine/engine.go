// Package engine exposes the derived metrics of the active profile. Nothing
// is cached: every call reads the current snapshot and recomputes.
package engine

import (
	"context"

	"lg/fitcalc-api/internal/calc"
	"lg/fitcalc-api/internal/profile"
)

// Engine reports ok=false from every getter while no profile is loaded.
type Engine struct {
	profiles *profile.Service
}

func New(profiles *profile.Service) *Engine {
	return &Engine{profiles: profiles}
}

func (e *Engine) Profile() (profile.Profile, bool) {
	return e.profiles.Profile()
}

func (e *Engine) SetProfile(ctx context.Context, p profile.Profile) error {
	return e.profiles.Save(ctx, p)
}

func (e *Engine) ClearProfile(ctx context.Context) error {
	return e.profiles.Clear(ctx)
}

func (e *Engine) BMR() (float64, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return 0, false
	}
	return calc.BMR(p), true
}

func (e *Engine) TDEE() (int, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return 0, false
	}
	return calc.TDEE(p), true
}

// WaterIntake is in millilitres per day.
func (e *Engine) WaterIntake() (int, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return 0, false
	}
	return calc.WaterIntake(p), true
}

func (e *Engine) BMI() (calc.BMI, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return calc.NoBMI, false
	}
	return calc.ComputeBMI(p), true
}

func (e *Engine) ProjectedResults() (calc.ProjectedResults, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return calc.ProjectedResults{}, false
	}
	return calc.Project(p), true
}

func (e *Engine) CalorieAdjustment() (calc.CalorieAdjustment, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return calc.CalorieAdjustment{}, false
	}
	return calc.AdjustCalories(p), true
}

func (e *Engine) ExerciseRecommendations() (calc.ExercisePlan, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return calc.ExercisePlan{}, false
	}
	return calc.ExerciseRecommendations(p), true
}

func (e *Engine) MealPlan() (calc.MealPlan, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return calc.MealPlan{}, false
	}
	return calc.GenerateMealPlan(p), true
}

// Dashboard is the at-a-glance set of daily metrics and the advice derived
// from them.
type Dashboard struct {
	BMR               float64                `json:"bmr"`
	TDEE              int                    `json:"tdee"`
	WaterIntake       int                    `json:"waterIntake"` // ml
	WaterGlasses      int                    `json:"waterGlasses"`
	BMI               calc.BMI               `json:"bmi"`
	CalorieAdjustment calc.CalorieAdjustment `json:"calorieAdjustment"`
	Exercise          calc.ExercisePlan      `json:"exercise"`
}

// Dashboard computes every daily metric from one snapshot, so a concurrent
// save cannot mix two profiles into a single response.
func (e *Engine) Dashboard() (Dashboard, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return Dashboard{}, false
	}
	water := calc.WaterIntake(p)
	return Dashboard{
		BMR:               calc.BMR(p),
		TDEE:              calc.TDEE(p),
		WaterIntake:       water,
		WaterGlasses:      calc.WaterGlasses(water),
		BMI:               calc.ComputeBMI(p),
		CalorieAdjustment: calc.AdjustCalories(p),
		Exercise:          calc.ExerciseRecommendations(p),
	}, true
}

// Results is the plan outlook: projections, BMI and meal plan for the
// profile they were computed from.
type Results struct {
	Profile   profile.Profile
	Projected calc.ProjectedResults
	BMI       calc.BMI
	MealPlan  calc.MealPlan
}

func (e *Engine) Results() (Results, bool) {
	p, ok := e.profiles.Profile()
	if !ok {
		return Results{}, false
	}
	return Results{
		Profile:   p,
		Projected: calc.Project(p),
		BMI:       calc.ComputeBMI(p),
		MealPlan:  calc.GenerateMealPlan(p),
	}, true
}
