package main

import "lg/fitcalc-api/internal/calc"

/* ─── Response shapes ────────────────────────────────────────────────── */

// formattedResults carries display strings for the results page, e.g.
// weight change "-2.1 kg" and large totals abbreviated as "12.3k".
type formattedResults struct {
	WeightChange   string `json:"weightChange"`
	CaloriesBurned string `json:"caloriesBurned"`
	WaterConsumed  string `json:"waterConsumed"`
	StepsTaken     string `json:"stepsTaken"`
}

// resultsResponse is the response shape for GET /api/results.
// MealCount and Allergies are echoed for display only; the meal plan does
// not depend on them.
type resultsResponse struct {
	PlanDuration int                   `json:"planDuration"`
	PlanProgress int                   `json:"planProgress"` // percent of a 90-day plan
	Projected    calc.ProjectedResults `json:"projected"`
	Formatted    formattedResults      `json:"formatted"`
	BMI          calc.BMI              `json:"bmi"`
	KMWalked     int                   `json:"kmWalked"`
	MealPlan     calc.MealPlan         `json:"mealPlan"`
	MacroShare   calc.MacroShare       `json:"macroShare"` // percent of daily calories
	MealCount    int                   `json:"mealCount"`
	Allergies    []string              `json:"allergies"`
}
