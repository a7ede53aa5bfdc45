package healthcalc

const (
	katchMcArdleBase   = 370
	katchMcArdleFactor = 21.6 // kcal per kg of lean mass.
)

// LeanMass returns the body weight (kg) excluding fat mass.
func LeanMass(weightKg, bodyFatFraction float64) (float64, error) {
	if err := checkPositive("weight_kg", weightKg); err != nil {
		return 0, err
	}
	if bodyFatFraction < 0 {
		return 0, invalid("body_fat", bodyFatFraction, "must not be negative")
	}
	// Negated so that NaN is rejected as well.
	if !(bodyFatFraction <= 1) {
		return 0, invalid("body_fat", bodyFatFraction, "must not exceed 1 (100%)")
	}

	return weightKg * (1 - bodyFatFraction), nil
}

// BMRKatchMcArdle calculates the Basal Metabolic Rate (kcal/day) with the
// Katch-McArdle formula, which is based on lean body mass.
//
// bodyFatFraction is the body fat share between 0 and 1; a user entering
// 15% passes 0.15.
func BMRKatchMcArdle(weightKg, bodyFatFraction float64) (float64, error) {
	lean, err := LeanMass(weightKg, bodyFatFraction)
	if err != nil {
		return 0, err
	}

	return checkResult("bmr", katchMcArdleBase+katchMcArdleFactor*lean)
}
