package healthcalc

// Measurements are the values a user supplies, in the units they type them.
type Measurements struct {
	HeightCm       float64 `yaml:"height_cm"`
	WeightKg       float64 `yaml:"weight_kg"`
	BodyFatPercent float64 `yaml:"body_fat_pct"` // 0-100
	Sex            Sex     `yaml:"sex"`
}

// Assessment holds every metric derived from one set of Measurements.
type Assessment struct {
	BMI      float64
	Category BMICategory
	BMR      float64 // kcal/day
	IBW      float64 // kg
}

// Assess converts m to the units each formula expects (cm to m, percent to
// fraction) and runs BMI, BMR and IBW in that order. The first error is
// returned as is and no partial Assessment is produced.
func Assess(m Measurements) (*Assessment, error) {
	bmi, err := BMI(m.WeightKg, m.HeightCm/100)
	if err != nil {
		return nil, err
	}

	bmr, err := BMRKatchMcArdle(m.WeightKg, m.BodyFatPercent/100)
	if err != nil {
		return nil, err
	}

	ibw, err := IBWLorentz(m.HeightCm, m.Sex)
	if err != nil {
		return nil, err
	}

	return &Assessment{
		BMI:      bmi,
		Category: ClassifyBMI(bmi),
		BMR:      bmr,
		IBW:      ibw,
	}, nil
}
