package calc

import (
	"math"
	"slices"

	"lg/fitcalc-api/internal/profile"
)

/* ─── Exercise recommendations ───────────────────────────────────────── */

// Tier groups activity levels for exercise advice.
type Tier string

const (
	Beginner     Tier = "beginner"
	Intermediate Tier = "intermediate"
	Advanced     Tier = "advanced"
)

// TierFor maps sedentary and light to Beginner and moderate to Intermediate.
// Everything else, including unknown levels, is Advanced.
func TierFor(level profile.ActivityLevel) Tier {
	switch level {
	case profile.Sedentary, profile.Light:
		return Beginner
	case profile.Moderate:
		return Intermediate
	default:
		return Advanced
	}
}

// ExercisePlan is weekly training advice for a goal and tier.
type ExercisePlan struct {
	Title       string   `json:"title"`
	Cardio      string   `json:"cardio"`
	Strength    string   `json:"strength"`
	Recommended []string `json:"recommended"`
}

type planKey struct {
	goal profile.FitnessGoal
	tier Tier
}

var exercisePlans = map[planKey]ExercisePlan{
	{profile.LoseWeight, Beginner}: {
		Title:    "Weight Loss Focus (Beginner)",
		Cardio:   "150-200 minutes of moderate cardio per week",
		Strength: "2 full-body strength training sessions per week",
		Recommended: []string{
			"Brisk walking (30 min, 5 days/week)",
			"Light bodyweight exercises",
			"Beginner yoga or Pilates",
			"Swimming (low impact)",
			"Focus on creating sustainable habits",
		},
	},
	{profile.LoseWeight, Intermediate}: {
		Title:    "Weight Loss Focus (Intermediate)",
		Cardio:   "200-250 minutes of moderate to vigorous cardio per week",
		Strength: "2-3 strength training sessions per week",
		Recommended: []string{
			"Jogging or running (30 min, 3-4 days/week)",
			"HIIT workouts (20 min, 2 days/week)",
			"Circuit training with light weights",
			"Cycling or elliptical training",
			"Add interval training to increase calorie burn",
		},
	},
	{profile.LoseWeight, Advanced}: {
		Title:    "Weight Loss Focus (Advanced)",
		Cardio:   "250-300 minutes of vigorous cardio per week",
		Strength: "3-4 strength training sessions per week",
		Recommended: []string{
			"HIIT workouts (30 min, 3 days/week)",
			"Running or sprint intervals",
			"Advanced circuit training",
			"CrossFit-style workouts",
			"Mix of cardio and heavy resistance training",
		},
	},
	{profile.GainMuscle, Beginner}: {
		Title:    "Muscle Building Focus (Beginner)",
		Cardio:   "75-100 minutes of light cardio per week",
		Strength: "3 full-body strength sessions per week",
		Recommended: []string{
			"Full-body workouts with focus on form",
			"Bodyweight exercises to build base strength",
			"Learn basic compound movements",
			"Light to moderate weights with higher reps (12-15)",
			"Focus on progressive overload and proper nutrition",
		},
	},
	{profile.GainMuscle, Intermediate}: {
		Title:    "Muscle Building Focus (Intermediate)",
		Cardio:   "75-100 minutes of moderate cardio per week",
		Strength: "4 strength training sessions per week (upper/lower split)",
		Recommended: []string{
			"Upper/lower body split routines",
			"Moderate to heavy weights (8-12 reps)",
			"Compound lifts (squats, deadlifts, bench press)",
			"Progressive overload training",
			"Focus on protein intake and recovery",
		},
	},
	{profile.GainMuscle, Advanced}: {
		Title:    "Muscle Building Focus (Advanced)",
		Cardio:   "75-100 minutes of cardio per week (for recovery)",
		Strength: "5-6 strength sessions per week (body part split)",
		Recommended: []string{
			"Body part split routines (PPL or body part specific)",
			"Heavy compound lifts with accessory work",
			"Periodization training cycles",
			"Advanced techniques (drop sets, supersets, etc.)",
			"Focus on nutrition timing and recovery protocols",
		},
	},
	{profile.Maintain, Beginner}: {
		Title:    "Balanced Fitness Focus (Beginner)",
		Cardio:   "150 minutes of light to moderate cardio per week",
		Strength: "2 full-body strength sessions per week",
		Recommended: []string{
			"Walking or light jogging",
			"Basic bodyweight exercises",
			"Yoga or flexibility work",
			"Light resistance band training",
			"Focus on consistency and enjoying movement",
		},
	},
	{profile.Maintain, Intermediate}: {
		Title:    "Balanced Fitness Focus (Intermediate)",
		Cardio:   "150 minutes of moderate cardio per week",
		Strength: "2-3 strength training sessions per week",
		Recommended: []string{
			"Mix of cardio and strength training",
			"Recreational sports or activities",
			"Circuit training 2x weekly",
			"Moderate intensity interval training",
			"Balance between all fitness components",
		},
	},
	{profile.Maintain, Advanced}: {
		Title:    "Balanced Fitness Focus (Advanced)",
		Cardio:   "150-180 minutes of varied cardio per week",
		Strength: "3-4 varied strength sessions per week",
		Recommended: []string{
			"Cross-training approach",
			"Mix of endurance, strength, and HIIT",
			"Sports-specific training",
			"Functional fitness and mobility work",
			"Focus on performance goals rather than appearance",
		},
	},
}

// ExerciseRecommendations picks the plan for the profile's goal and tier.
// Unknown goals get the maintenance plans.
func ExerciseRecommendations(p profile.Profile) ExercisePlan {
	goal := p.FitnessGoal
	if goal != profile.LoseWeight && goal != profile.GainMuscle {
		goal = profile.Maintain
	}
	plan := exercisePlans[planKey{goal, TierFor(p.ActivityLevel)}]
	plan.Recommended = slices.Clone(plan.Recommended)
	return plan
}

/* ─── Calorie adjustment ─────────────────────────────────────────────── */

const (
	adjustDeficitShare = 0.2
	adjustSurplusShare = 0.1
)

// CalorieAdjustment is the dashboard's intake advice. It uses a 20% deficit
// or 10% surplus of TDEE and is independent of the fixed offsets in MealPlan.
type CalorieAdjustment struct {
	Deficit int    `json:"deficit,omitempty"`
	Surplus int    `json:"surplus,omitempty"`
	Target  int    `json:"target"`
	Text    string `json:"text"`
}

// AdjustCalories returns the intake advice for the profile's goal. Unknown goals
// keep TDEE as the target.
func AdjustCalories(p profile.Profile) CalorieAdjustment {
	tdee := float64(TDEE(p))
	switch p.FitnessGoal {
	case profile.LoseWeight:
		return CalorieAdjustment{
			Deficit: int(math.Round(tdee * adjustDeficitShare)),
			Target:  int(math.Round(tdee * (1 - adjustDeficitShare))),
			Text:    "Calorie deficit recommended for weight loss",
		}
	case profile.GainMuscle:
		return CalorieAdjustment{
			Surplus: int(math.Round(tdee * adjustSurplusShare)),
			Target:  int(math.Round(tdee * (1 + adjustSurplusShare))),
			Text:    "Calorie surplus recommended for muscle gain",
		}
	default:
		return CalorieAdjustment{
			Target: int(tdee),
			Text:   "Maintain current calorie intake",
		}
	}
}

/* ─── Display numbers ────────────────────────────────────────────────── */

const (
	mlPerGlass  = 250
	stepsPerKM  = 1300
	percentBase = 100
)

// WaterGlasses converts a daily water target in ml to 250 ml glasses.
func WaterGlasses(ml int) int {
	return int(math.Round(float64(ml) / mlPerGlass))
}

// KMWalked approximates distance from a step count.
func KMWalked(steps int) int {
	return int(math.Round(float64(steps) / stepsPerKM))
}

// MacroShare is each macro target as a percentage of daily calories.
type MacroShare struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// MacroShares is all zero when the plan has no daily calories.
func MacroShares(plan MealPlan) MacroShare {
	if plan.DailyCalories == 0 {
		return MacroShare{}
	}
	share := func(grams, kcalPerGram int) int {
		return int(math.Round(float64(grams*kcalPerGram) / float64(plan.DailyCalories) * percentBase))
	}
	return MacroShare{
		Protein: share(plan.ProteinTarget, kcalPerGramProtein),
		Carbs:   share(plan.CarbsTarget, kcalPerGramCarbs),
		Fat:     share(plan.FatTarget, kcalPerGramFat),
	}
}
