package utils

import "math"

// CalculateBMI expects weight in kilograms and height in centimeters.
// Returns nil when either metric is missing or non-positive, rounded
// to one decimal otherwise.
func CalculateBMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil {
		return nil
	}
	if *weightKg <= 0 || *heightCm <= 0 {
		return nil
	}

	h := *heightCm / 100.0 // to meters
	bmi := *weightKg / (h * h)
	bmi = math.Round(bmi*10) / 10
	return &bmi
}

// BMIBucket selects which fixed suggestion list applies.
type BMIBucket int

const (
	BucketNone BMIBucket = iota // BMI undefined
	BucketUnderweight
	BucketNormal
	BucketOverweight
)

// BucketFor maps a BMI onto its suggestion bucket. Boundaries are
// half-open on the lower bound: 18.5 is normal, 22.0 is overweight.
func BucketFor(bmi *float64) BMIBucket {
	switch {
	case bmi == nil:
		return BucketNone
	case *bmi < 18.5:
		return BucketUnderweight
	case *bmi < 22:
		return BucketNormal
	default:
		return BucketOverweight
	}
}

// Suggestion is one fixed meal recommendation.
type Suggestion struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

var suggestionTable = map[BMIBucket][]Suggestion{
	BucketUnderweight: {
		{Title: "Peanut Butter Banana Smoothie", Reason: "High-calorie, healthy fats & protein"},
		{Title: "Avocado Toast with Eggs", Reason: "Calorie-dense with good fats and protein"},
	},
	BucketNormal: {
		{Title: "Greek Yogurt with Granola & Honey", Reason: "Balanced calories and protein"},
		{Title: "Chicken Rice Bowl with Olive Oil", Reason: "Good mix of carbs and protein"},
	},
	BucketOverweight: {
		{Title: "Grilled Salmon & Veggies", Reason: "High protein, low calorie"},
		{Title: "Quinoa Salad with Chickpeas", Reason: "Fibre and protein-rich"},
	},
}

// SuggestMeals returns the fixed suggestion list for the given BMI.
// An undefined BMI yields an empty (non-nil) list.
func SuggestMeals(bmi *float64) []Suggestion {
	s, ok := suggestionTable[BucketFor(bmi)]
	if !ok {
		return []Suggestion{}
	}
	out := make([]Suggestion, len(s))
	copy(out, s)
	return out
}

// DailyCalorieGoal derives the daily calorie target shown on the
// progress chart. Falls back to 2000 kcal when BMI is undefined.
func DailyCalorieGoal(bmi *float64) int {
	if bmi == nil {
		return 2000
	}
	switch {
	case *bmi < 18.5:
		return 2500
	case *bmi < 24.9:
		return 2200
	case *bmi < 29.9:
		return 2000
	default:
		return 1800
	}
}

// BMICategory gives the display label for a defined BMI.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
