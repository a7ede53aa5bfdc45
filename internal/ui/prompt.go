package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ericstrs/healthcalc"
)

// InputError reports console input that could not be converted to the
// expected type. Range checks are left to healthcalc.
type InputError struct {
	Field string
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Input)
}

func (e *InputError) Unwrap() error { return e.Err }

// Prompter asks for measurements on w and reads answers from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter creates a Prompter reading from r and prompting on w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// readLine prints prompt and returns the next trimmed input line. A last
// line without a trailing newline is still returned.
func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptFloat prints prompt and converts the answer to a float.
func (p *Prompter) promptFloat(prompt, field string) (float64, error) {
	s, err := p.readLine(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InputError{Field: field, Input: s, Err: err}
	}
	return f, nil
}

// Measurements prompts for height, weight, body fat and sex, in that order.
// Only conversion is done here; values are validated by the calculations.
func (p *Prompter) Measurements() (*healthcalc.Measurements, error) {
	var m healthcalc.Measurements
	var err error

	if m.HeightCm, err = p.promptFloat("Enter your height in cm: ", "height"); err != nil {
		return nil, err
	}
	if m.WeightKg, err = p.promptFloat("Enter your weight in kg: ", "weight"); err != nil {
		return nil, err
	}
	if m.BodyFatPercent, err = p.promptFloat("Enter your body fat percentage (%): ", "body fat"); err != nil {
		return nil, err
	}

	s, err := p.readLine("Enter your sex (m for male, f for female): ")
	if err != nil {
		return nil, err
	}
	if m.Sex, err = healthcalc.ParseSex(s); err != nil {
		return nil, err
	}

	return &m, nil
}

// PrintAssessment writes every metric of a with two decimals.
func PrintAssessment(w io.Writer, a *healthcalc.Assessment) {
	fmt.Fprintln(w, "\n--- RESULTS ---")
	fmt.Fprintf(w, "Body Mass Index (BMI): %.2f\n", a.BMI)
	fmt.Fprintf(w, "BMI classification: %s\n", a.Category)
	fmt.Fprintf(w, "Basal Metabolic Rate (BMR): %.2f kcal/day\n", a.BMR)
	fmt.Fprintf(w, "Ideal Body Weight (IBW): %.2f kg\n", a.IBW)
}

// PrintError writes a message for err matching its kind: invalid health
// data, unreadable input, or anything else.
func PrintError(w io.Writer, err error) {
	var ie *InputError
	switch {
	case errors.Is(err, healthcalc.ErrInvalidHealthData):
		fmt.Fprintf(w, "Invalid health data: %v\n", err)
	case errors.As(err, &ie):
		fmt.Fprintf(w, "Invalid input: %v\n", err)
	default:
		fmt.Fprintf(w, "Unexpected error: %v\n", err)
	}
}
