package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/fitcalc-api/internal/calc"
)

// getDashboard returns BMR, TDEE, water target and BMI for the active profile,
// with the calorie adjustment and exercise plan for its goal.
// GET /api/dashboard.
func (h *Handler) getDashboard(c *gin.Context) {
	d, ok := h.engine.Dashboard()
	if !ok {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, d)
}

// getResults returns the projected outcome of the plan together with the
// meal plan. Responds 404 rather than a zero-filled body when there is
// nothing to compute from.
// GET /api/results.
func (h *Handler) getResults(c *gin.Context) {
	r, ok := h.engine.Results()
	if !ok {
		apiError(c, http.StatusNotFound, "unable to compute results")
		return
	}

	c.JSON(http.StatusOK, resultsResponse{
		PlanDuration: r.Profile.PlanDuration,
		PlanProgress: calc.PlanProgress(r.Profile.PlanDuration),
		Projected:    r.Projected,
		Formatted: formattedResults{
			WeightChange:   calc.FormatWeightChange(r.Projected.WeightChange),
			CaloriesBurned: calc.FormatLargeNumber(r.Projected.CaloriesBurned),
			WaterConsumed:  fmt.Sprintf("%.1fL", r.Projected.WaterConsumed),
			StepsTaken:     calc.FormatLargeNumber(float64(r.Projected.StepsTaken)),
		},
		BMI:        r.BMI,
		KMWalked:   calc.KMWalked(r.Projected.StepsTaken),
		MealPlan:   r.MealPlan,
		MacroShare: calc.MacroShares(r.MealPlan),
		MealCount:  r.Profile.MealCount,
		Allergies:  r.Profile.Allergies,
	})
}

// getMealPlan returns the goal-adjusted targets and catalog meals.
// GET /api/meal-plan.
func (h *Handler) getMealPlan(c *gin.Context) {
	plan, ok := h.engine.MealPlan()
	if !ok {
		apiError(c, http.StatusNotFound, "unable to generate meal plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}
