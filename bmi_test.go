package healthcalc_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hc "github.com/ericstrs/healthcalc"
)

func ExampleBMI() {
	bmi, err := hc.BMI(70, 1.75)
	fmt.Printf("%.2f %s\n", bmi, hc.ClassifyBMI(bmi))
	fmt.Println(err)

	// Output:
	// 22.86 normal
	// <nil>
}

func ExampleBMI_error() {
	_, err := hc.BMI(0, 1.75)
	fmt.Println(err)

	// Output:
	// weight_kg 0: must be greater than zero
}

func TestBMI(t *testing.T) {
	tests := []struct {
		weight, height float64
	}{
		{70, 1.75},
		{50, 1.6},
		{120.5, 1.92},
		{0.1, 0.3},
	}
	for _, tc := range tests {
		got, err := hc.BMI(tc.weight, tc.height)
		require.NoError(t, err)
		assert.InDelta(t, tc.weight/(tc.height*tc.height), got, 0.01)
	}
}

func TestBMI_invalid(t *testing.T) {
	tests := []struct {
		name           string
		weight, height float64
		field          string
	}{
		{"zero weight", 0, 1.75, "weight_kg"},
		{"negative weight", -70, 1.75, "weight_kg"},
		{"zero height", 70, 0, "height_m"},
		{"negative height", 70, -1.75, "height_m"},
		{"NaN weight", math.NaN(), 1.75, "weight_kg"},
		{"infinite height", 70, math.Inf(1), "height_m"},
		{"both invalid", -1, -1, "weight_kg"},
		{"overflow", 1e300, 1e-10, "bmi"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := hc.BMI(tc.weight, tc.height)
			require.ErrorIs(t, err, hc.ErrInvalidHealthData)
			assert.Zero(t, got)

			var e *hc.InvalidHealthDataError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tc.field, e.Field)
		})
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want hc.BMICategory
	}{
		{10, hc.Underweight},
		{18.49, hc.Underweight},
		{18.5, hc.Normal},
		{24.99, hc.Normal},
		{25, hc.Overweight},
		{29.99, hc.Overweight},
		{30, hc.Obese},
		{45, hc.Obese},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, hc.ClassifyBMI(tc.bmi), "bmi %v", tc.bmi)
	}
}

func TestBMI_pure(t *testing.T) {
	a, errA := hc.BMI(82.3, 1.81)
	b, errB := hc.BMI(82.3, 1.81)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}
