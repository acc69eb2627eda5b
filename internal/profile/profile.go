package profile

import (
	"slices"
	"strings"
)

// Gender selects the Mifflin-St Jeor constant. Anything other than male uses
// the female constant.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// ActivityLevel is an ordered scale from sedentary to very-active.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very-active"
)

// FitnessGoal drives the calorie offset and macro split.
type FitnessGoal string

const (
	LoseWeight FitnessGoal = "lose-weight"
	Maintain   FitnessGoal = "maintain"
	GainMuscle FitnessGoal = "gain-muscle"
)

// DietaryPreference picks the meal catalog.
type DietaryPreference string

const (
	Vegetarian    DietaryPreference = "vegetarian"
	NonVegetarian DietaryPreference = "non-vegetarian"
	Vegan         DietaryPreference = "vegan"
	Indian        DietaryPreference = "indian"
)

// Profile is the single persisted user record. JSON field names match the
// stored layout, so changing a tag breaks profiles already on disk.
type Profile struct {
	Name              string            `json:"name"`
	Age               int               `json:"age"`
	Weight            float64           `json:"weight"` // kg
	Height            float64           `json:"height"` // cm
	Gender            Gender            `json:"gender"`
	ActivityLevel     ActivityLevel     `json:"activityLevel"`
	FitnessGoal       FitnessGoal       `json:"fitnessGoal"`
	Steps             int               `json:"steps"`        // daily target
	PlanDuration      int               `json:"planDuration"` // days
	DietaryPreference DietaryPreference `json:"dietaryPreference"`
	// Allergies and MealCount are recorded and shown back to the user but do
	// not feed meal selection or portioning.
	Allergies []string `json:"allergies"`
	MealCount int      `json:"mealCount"`
}

// Clone returns a copy that shares no memory with p.
func (p Profile) Clone() Profile {
	p.Allergies = slices.Clone(p.Allergies)
	return p
}

// Default returns the values the data-entry form starts from when no profile
// has been saved yet.
func Default() Profile {
	return Profile{
		Name:              "",
		Age:               25,
		Weight:            70,
		Height:            170,
		Gender:            Male,
		ActivityLevel:     Moderate,
		FitnessGoal:       Maintain,
		Steps:             8000,
		PlanDuration:      30,
		DietaryPreference: NonVegetarian,
		Allergies:         []string{},
		MealCount:         3,
	}
}

// Validate runs the data-entry checks and returns a field -> message map, or
// nil when the profile is acceptable. The store and the calculators never
// call this; it belongs to whoever collects the input.
func Validate(p Profile) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "Name is required"
	}
	if p.Age <= 0 {
		errs["age"] = "Please enter a valid age"
	}
	if p.Weight <= 0 {
		errs["weight"] = "Please enter a valid weight"
	}
	if p.Height <= 0 {
		errs["height"] = "Please enter a valid height"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
