// Package calc derives metabolic, hydration, body-mass and plan metrics from
// a profile. Every function is pure: it reads only its arguments and the
// static tables in this package.
package calc

import (
	"math"

	"lg/fitcalc-api/internal/profile"
)

// activityMultipliers maps activity level to its TDEE multiplier.
var activityMultipliers = map[profile.ActivityLevel]float64{
	profile.Sedentary:  1.2,
	profile.Light:      1.375,
	profile.Moderate:   1.55,
	profile.Active:     1.725,
	profile.VeryActive: 1.9,
}

// defaultMultiplier is used for an activity level outside the table.
const defaultMultiplier = 1.55

// waterMLPerKG is the daily hydration target per kilogram of body weight.
const waterMLPerKG = 33

// ActivityMultiplier returns the TDEE multiplier for level, falling back to
// the moderate multiplier for unknown values.
func ActivityMultiplier(level profile.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultMultiplier
}

// BMR computes basal metabolic rate in kcal/day with the Mifflin-St Jeor
// equation. Only male gets the +5 constant; female and other both get -161.
func BMR(p profile.Profile) float64 {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == profile.Male {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE is BMR scaled by the activity multiplier, rounded to whole kcal/day.
// math.Round takes halves away from zero; only a negative BMR would see that.
func TDEE(p profile.Profile) int {
	return int(math.Round(BMR(p) * ActivityMultiplier(p.ActivityLevel)))
}

// WaterIntake returns the daily water target in millilitres. It depends on
// weight alone.
func WaterIntake(p profile.Profile) int {
	return int(math.Round(p.Weight * waterMLPerKG))
}
