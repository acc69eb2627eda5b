package calc

import (
	"encoding/json"
	"math"

	"lg/fitcalc-api/internal/profile"
)

// BMICategory is the WHO weight band a BMI value falls in.
type BMICategory string

const (
	Underweight BMICategory = "Underweight"
	Normal      BMICategory = "Normal"
	Overweight  BMICategory = "Overweight"
	Obese       BMICategory = "Obese"
	Unknown     BMICategory = "Unknown"
)

// ColorTag is a display hint attached to each category. It has no effect on
// any calculation.
type ColorTag string

const (
	Blue   ColorTag = "blue"
	Green  ColorTag = "green"
	Yellow ColorTag = "yellow"
	Red    ColorTag = "red"
	Gray   ColorTag = "gray"
)

// BMI is a body mass index rounded to one decimal with its band.
type BMI struct {
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
	Color    ColorTag    `json:"colorTag"`
}

// NoBMI is reported when there is no profile to measure.
var NoBMI = BMI{Value: 0, Category: Unknown, Color: Gray}

// MarshalJSON writes a non-finite value (zero or negative height) as null.
func (b BMI) MarshalJSON() ([]byte, error) {
	var value *float64
	if !math.IsNaN(b.Value) && !math.IsInf(b.Value, 0) {
		value = &b.Value
	}
	return json.Marshal(struct {
		Value    *float64    `json:"value"`
		Category BMICategory `json:"category"`
		Color    ColorTag    `json:"colorTag"`
	}{value, b.Category, b.Color})
}

// ComputeBMI returns weight / height(m)^2 rounded to one decimal. The category
// is decided on the unrounded value so that 24.96 is still Normal.
func ComputeBMI(p profile.Profile) BMI {
	meters := p.Height / 100
	bmi := p.Weight / (meters * meters)
	category, color := classifyBMI(bmi)
	return BMI{
		Value:    math.Round(bmi*10) / 10,
		Category: category,
		Color:    color,
	}
}

// classifyBMI uses half-open bands: 18.5 is Normal, 25 Overweight, 30 Obese.
// NaN falls through to Obese.
func classifyBMI(bmi float64) (BMICategory, ColorTag) {
	switch {
	case bmi < 18.5:
		return Underweight, Blue
	case bmi >= 18.5 && bmi < 25:
		return Normal, Green
	case bmi >= 25 && bmi < 30:
		return Overweight, Yellow
	default:
		return Obese, Red
	}
}
