package healthcalc

import "strings"

// Sex selects the variant of sex-dependent formulas.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Biologically plausible height range (cm) accepted by IBWLorentz.
const (
	MinHeightCm = 30.0
	MaxHeightCm = 250.0
)

// ParseSex accepts "m", "male", "f" or "female" in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male, nil
	case "f", "female":
		return Female, nil
	}

	return "", invalid("sex", s, "must be male or female")
}

// lorentzDivisor returns the divisor applied to the height above 150 cm.
func (s Sex) lorentzDivisor() (float64, error) {
	switch s {
	case Male:
		return 4, nil
	case Female:
		return 2.5, nil
	}

	return 0, invalid("sex", string(s), "must be male or female")
}

// IBWLorentz calculates the Ideal Body Weight (kg) from height (cm) with the
// Lorentz formula. Heights outside [MinHeightCm, MaxHeightCm] are rejected.
//
// There is no default sex: callers must state which formula applies.
func IBWLorentz(heightCm float64, sex Sex) (float64, error) {
	if err := checkRange("height_cm", heightCm, MinHeightCm, MaxHeightCm); err != nil {
		return 0, err
	}
	d, err := sex.lorentzDivisor()
	if err != nil {
		return 0, err
	}

	return heightCm - 100 - (heightCm-150)/d, nil
}
