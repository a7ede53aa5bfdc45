package healthcalc

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
)

// CSV column names for batch input and output.
const (
	HeightCol   = "height_cm"
	WeightCol   = "weight_kg"
	BodyFatCol  = "body_fat_pct"
	SexCol      = "sex"
	BMICol      = "bmi"
	CategoryCol = "category"
	BMRCol      = "bmr"
	IBWCol      = "ibw"
	ErrorCol    = "error"
)

var inputCols = []string{HeightCol, WeightCol, BodyFatCol, SexCol}

// ReadMeasurements reads measurement rows from CSV into a data frame. The
// header must name every input column; other columns are ignored.
func ReadMeasurements(ctx context.Context, r io.ReadSeeker) (*dataframe.DataFrame, error) {
	df, err := imports.LoadFromCSV(ctx, r, imports.CSVLoadOptions{TrimLeadingSpace: true})
	if err != nil {
		return nil, fmt.Errorf("couldn't read measurements: %w", err)
	}

	if _, err := columns(df); err != nil {
		return nil, err
	}

	return df, nil
}

// columns maps every input column name to its index in df.
func columns(df *dataframe.DataFrame) (map[string]int, error) {
	cols := make(map[string]int, len(inputCols))
	for _, name := range inputCols {
		i, err := df.NameToColumn(name)
		if err != nil {
			return nil, fmt.Errorf("missing column %q", name)
		}
		cols[name] = i
	}
	return cols, nil
}

// Evaluate assesses every row of df and returns a new data frame with the
// input columns followed by bmi, category, bmr, ibw and error. A row that
// fails leaves its metric cells nil and carries the error message instead.
func Evaluate(ctx context.Context, df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	cols, err := columns(df)
	if err != nil {
		return nil, err
	}

	n := df.NRows()
	raw := make(map[string][]interface{}, len(inputCols))
	var bmis, cats, bmrs, ibws, errs []interface{}

	for row := 0; row < n; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, name := range inputCols {
			raw[name] = append(raw[name], cell(df, cols[name], row))
		}

		a, err := assessRow(df, cols, row)
		if err != nil {
			bmis = append(bmis, nil)
			cats = append(cats, nil)
			bmrs = append(bmrs, nil)
			ibws = append(ibws, nil)
			errs = append(errs, err.Error())
			continue
		}

		bmis = append(bmis, a.BMI)
		cats = append(cats, string(a.Category))
		bmrs = append(bmrs, a.BMR)
		ibws = append(ibws, a.IBW)
		errs = append(errs, nil)
	}

	si := &dataframe.SeriesInit{Capacity: n}
	out := dataframe.NewDataFrame(
		dataframe.NewSeriesString(HeightCol, si, raw[HeightCol]...),
		dataframe.NewSeriesString(WeightCol, si, raw[WeightCol]...),
		dataframe.NewSeriesString(BodyFatCol, si, raw[BodyFatCol]...),
		dataframe.NewSeriesString(SexCol, si, raw[SexCol]...),
		metricSeries(BMICol, si, bmis),
		dataframe.NewSeriesString(CategoryCol, si, cats...),
		metricSeries(BMRCol, si, bmrs),
		metricSeries(IBWCol, si, ibws),
		dataframe.NewSeriesString(ErrorCol, si, errs...),
	)

	return out, nil
}

// metricSeries builds a float series printed with two decimals.
func metricSeries(name string, si *dataframe.SeriesInit, vals []interface{}) *dataframe.SeriesFloat64 {
	s := dataframe.NewSeriesFloat64(name, si, vals...)
	s.SetValueToStringFormatter(func(v interface{}) string {
		if v == nil {
			return "NaN"
		}
		return fmt.Sprintf("%.2f", v)
	})
	return s
}

// assessRow coerces the input cells of row and runs Assess on them.
func assessRow(df *dataframe.DataFrame, cols map[string]int, row int) (*Assessment, error) {
	var m Measurements
	var err error

	if m.HeightCm, err = parseCell(df, cols, HeightCol, row); err != nil {
		return nil, err
	}
	if m.WeightKg, err = parseCell(df, cols, WeightCol, row); err != nil {
		return nil, err
	}
	if m.BodyFatPercent, err = parseCell(df, cols, BodyFatCol, row); err != nil {
		return nil, err
	}
	if m.Sex, err = ParseSex(cell(df, cols[SexCol], row)); err != nil {
		return nil, err
	}

	return Assess(m)
}

// cell returns the trimmed text of a cell, or "" when it is nil.
func cell(df *dataframe.DataFrame, col, row int) string {
	switch v := df.Series[col].Value(row).(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func parseCell(df *dataframe.DataFrame, cols map[string]int, name string, row int) (float64, error) {
	s := cell(df, cols[name], row)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return f, nil
}
