// Package healthcalc computes basic body health metrics: Body Mass Index,
// Basal Metabolic Rate (Katch-McArdle) and Ideal Body Weight (Lorentz).
//
// Every calculation validates its inputs before doing any arithmetic and
// returns an *InvalidHealthDataError when a value is out of range.
package healthcalc

// BMICategory is the weight band a BMI value falls into.
type BMICategory string

const (
	Underweight BMICategory = "underweight"
	Normal      BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese       BMICategory = "obese"
)

// BMI thresholds. Each band is closed below and open above.
const (
	normalMinBMI     = 18.5
	overweightMinBMI = 25.0
	obeseMinBMI      = 30.0
)

// BMI calculates the Body Mass Index from weight (kg) and height (m).
func BMI(weightKg, heightM float64) (float64, error) {
	if err := checkPositive("weight_kg", weightKg); err != nil {
		return 0, err
	}
	if err := checkPositive("height_m", heightM); err != nil {
		return 0, err
	}

	return checkResult("bmi", weightKg/(heightM*heightM))
}

// ClassifyBMI maps a BMI value to its category.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < normalMinBMI:
		return Underweight
	case bmi < overweightMinBMI:
		return Normal
	case bmi < obeseMinBMI:
		return Overweight
	default:
		return Obese
	}
}
