package calc

import (
	"fmt"
	"math"
	"strconv"
)

// progressHorizonDays is the plan length shown as a full progress ring.
const progressHorizonDays = 90

// FormatWeightChange renders kg with an explicit sign and one decimal,
// e.g. "-2.1 kg". Zero is shown as a gain.
func FormatWeightChange(kg float64) string {
	sign := "+"
	if kg < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%.1f kg", sign, math.Abs(kg))
}

// FormatLargeNumber abbreviates values from 1000 up as thousands ("12.3k")
// and rounds anything smaller to a whole number.
func FormatLargeNumber(n float64) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", n/1000)
	}
	return strconv.Itoa(int(math.Round(n)))
}

// PlanProgress maps a plan length onto a 0-100 percentage of a 90-day plan.
func PlanProgress(days int) int {
	return min(100, int(math.Round(float64(days)/progressHorizonDays*100)))
}
