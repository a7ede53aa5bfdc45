package healthcalc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleIBWLorentz() {
	male, _ := IBWLorentz(180, Male)
	female, _ := IBWLorentz(170, Female)
	fmt.Printf("%.2f %.2f\n", male, female)

	// Output:
	// 72.50 62.00
}

func ExampleIBWLorentz_error() {
	_, err := IBWLorentz(300, Male)
	fmt.Println(err)

	// Output:
	// height_cm 300: must be between 30 and 250
}

func ExampleParseSex() {
	s, err := ParseSex("F")
	fmt.Println(s, err)

	_, err = ParseSex("x")
	fmt.Println(err)

	// Output:
	// female <nil>
	// sex x: must be male or female
}

func TestIBWLorentz_invalidHeight(t *testing.T) {
	for _, h := range []float64{0, -100, -170, 250.1, 300, 29.9} {
		for _, s := range []Sex{Male, Female} {
			got, err := IBWLorentz(h, s)
			require.ErrorIs(t, err, ErrInvalidHealthData, "height %v sex %s", h, s)
			assert.Zero(t, got)
		}
	}
}

func TestIBWLorentz_validHeight(t *testing.T) {
	tests := []struct {
		height float64
		sex    Sex
		want   float64
	}{
		{30, Male, 30 - 100 - (30-150)/4.0},
		{150, Male, 50},
		{180, Male, 72.5},
		{250, Male, 125},
		{30, Female, 30 - 100 - (30-150)/2.5},
		{150, Female, 50},
		{250, Female, 110},
		{175.5, Male, 175.5 - 100 - 25.5/4},
		{162.3, Female, 162.3 - 100 - 12.3/2.5},
	}
	for _, tc := range tests {
		got, err := IBWLorentz(tc.height, tc.sex)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 0.01, "height %v sex %s", tc.height, tc.sex)
	}
}

func TestIBWLorentz_unknownSex(t *testing.T) {
	got, err := IBWLorentz(170, "")
	require.ErrorIs(t, err, ErrInvalidHealthData)
	assert.Zero(t, got)

	_, err = IBWLorentz(170, Sex("x"))
	var e *InvalidHealthDataError
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "sex", e.Field)
}

func TestIBWLorentz_heightCheckedFirst(t *testing.T) {
	_, err := IBWLorentz(0, "")
	var e *InvalidHealthDataError
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "height_cm", e.Field)
}

func TestIBWLorentz_pure(t *testing.T) {
	for _, s := range []Sex{Male, Female} {
		a, errA := IBWLorentz(181.4, s)
		b, errB := IBWLorentz(181.4, s)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b, "sex %s", s)
	}
}

func TestParseSex(t *testing.T) {
	tests := map[string]Sex{
		"m":        Male,
		"M":        Male,
		" male ":   Male,
		"MALE":     Male,
		"f":        Female,
		"Female":   Female,
		"female\n": Female,
	}
	for in, want := range tests {
		got, err := ParseSex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "x", "males", "0"} {
		_, err := ParseSex(in)
		assert.ErrorIs(t, err, ErrInvalidHealthData, in)
	}
}
