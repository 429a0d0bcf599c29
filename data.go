package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vdobler/socialchart/stat"
)

// DataFrame is a table read from CSV. All cells are kept as text and
// are coerced to numbers or times when a column is requested as such.
type DataFrame struct {
	Name string
	N    int // Number of rows.

	names   []string
	columns map[string][]string
}

// NewDataFrame creates an empty data frame with the given columns.
func NewDataFrame(name string, columns ...string) *DataFrame {
	df := &DataFrame{
		Name:    name,
		columns: make(map[string][]string, len(columns)),
	}
	for _, c := range columns {
		df.names = append(df.names, c)
		df.columns[c] = nil
	}
	return df
}

// ParseError reports a cell which cannot be coerced to the requested type.
type ParseError struct {
	Frame  string
	Row    int // 1-based data row, the header is row 0.
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d, column %s: cannot parse %q: %v",
		e.Frame, e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadCSV reads a header line and all records from r.
func ReadCSV(name string, r io.Reader) (*DataFrame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Errorf("%s: no header", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading header", name)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	seen := NewStringSetFrom(header)
	if seen.Len() != len(header) {
		return nil, errors.Errorf("%s: duplicate column in header %v", name, header)
	}

	df := NewDataFrame(name, header...)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s", name)
		}
		if len(record) != len(header) {
			line, _ := cr.FieldPos(0)
			return nil, errors.Errorf("%s: line %d has %d fields, want %d",
				name, line, len(record), len(header))
		}
		if err := df.AppendRow(record...); err != nil {
			return nil, err
		}
	}
	return df, nil
}

// AppendRow adds one row. The number of values must match the columns.
func (df *DataFrame) AppendRow(values ...string) error {
	if len(values) != len(df.names) {
		return errors.Errorf("%s: row %d has %d fields, want %d",
			df.Name, df.N+1, len(values), len(df.names))
	}
	for i, c := range df.names {
		df.columns[c] = append(df.columns[c], values[i])
	}
	df.N++
	return nil
}

// WriteCSV writes df including a header line.
func (df *DataFrame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(df.names); err != nil {
		return errors.Wrapf(err, "%s: writing header", df.Name)
	}
	record := make([]string, len(df.names))
	for i := 0; i < df.N; i++ {
		for j, c := range df.names {
			record[j] = df.columns[c][i]
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "%s: writing row %d", df.Name, i+1)
		}
	}
	cw.Flush()
	return errors.Wrapf(cw.Error(), "%s: flushing", df.Name)
}

// Names returns the column names in header order.
func (df *DataFrame) Names() []string {
	return append([]string(nil), df.names...)
}

// Has reports whether df has a column name.
func (df *DataFrame) Has(name string) bool {
	_, ok := df.columns[name]
	return ok
}

func (df *DataFrame) column(name string) ([]string, error) {
	col, ok := df.columns[name]
	if !ok {
		return nil, errors.Errorf("%s: no such column %q (have %s)",
			df.Name, name, strings.Join(df.names, ", "))
	}
	return col, nil
}

// Strings returns a copy of the raw cells of column name.
func (df *DataFrame) Strings(name string) ([]string, error) {
	col, err := df.column(name)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), col...), nil
}

// Floats coerces column name to numbers.
func (df *DataFrame) Floats(name string) ([]float64, error) {
	col, err := df.column(name)
	if err != nil {
		return nil, err
	}
	floats := make([]float64, len(col))
	for i, s := range col {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, &ParseError{Frame: df.Name, Row: i + 1, Column: name, Value: s, Err: err}
		}
		floats[i] = f
	}
	return floats, nil
}

// TimeLayouts are the layouts tried, in order, by Times.
var TimeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// ParseTime parses s with the first matching layout of TimeLayouts.
// Times without zone are UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range TimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unknown time format")
}

// Times coerces column name to times.
func (df *DataFrame) Times(name string) ([]time.Time, error) {
	col, err := df.column(name)
	if err != nil {
		return nil, err
	}
	times := make([]time.Time, len(col))
	for i, s := range col {
		t, err := ParseTime(s)
		if err != nil {
			return nil, &ParseError{Frame: df.Name, Row: i + 1, Column: name, Value: s, Err: err}
		}
		times[i] = t
	}
	return times, nil
}

// Levels returns the distinct values of column name, sorted.
func (df *DataFrame) Levels(name string) ([]string, error) {
	col, err := df.column(name)
	if err != nil {
		return nil, err
	}
	return NewStringSetFrom(col).Elements(), nil
}

// Unique returns the distinct values of column name in the order they
// first appear.
func (df *DataFrame) Unique(name string) ([]string, error) {
	col, err := df.column(name)
	if err != nil {
		return nil, err
	}
	return NewStringSetFrom(col).Ordered(), nil
}

// Filter extracts all rows from df where field equals value.
func (df *DataFrame) Filter(field, value string) (*DataFrame, error) {
	col, err := df.column(field)
	if err != nil {
		return nil, err
	}
	result := NewDataFrame(fmt.Sprintf("%s|%s=%s", df.Name, field, value), df.names...)
	for i, v := range col {
		if v != value {
			continue
		}
		result.appendFrom(df, i)
	}
	return result, nil
}

func (df *DataFrame) appendFrom(src *DataFrame, i int) {
	for _, c := range df.names {
		df.columns[c] = append(df.columns[c], src.columns[c][i])
	}
	df.N++
}

// Groups partitions the numeric column value by the categories of key.
// Groups are sorted by key.
func (df *DataFrame) Groups(key, value string) ([]stat.Group, error) {
	keys, err := df.column(key)
	if err != nil {
		return nil, err
	}
	values, err := df.Floats(value)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string][]float64)
	for i, k := range keys {
		byKey[k] = append(byKey[k], values[i])
	}
	groups := make([]stat.Group, 0, len(byKey))
	for k, v := range byKey {
		groups = append(groups, stat.Group{Key: k, Values: v})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups, nil
}

// Derive adds column dst computed from column src by f.
func (df *DataFrame) Derive(dst, src string, f func(string) (string, error)) error {
	if df.Has(dst) {
		return errors.Errorf("%s: column %q exists", df.Name, dst)
	}
	col, err := df.column(src)
	if err != nil {
		return err
	}
	derived := make([]string, len(col))
	for i, s := range col {
		v, err := f(s)
		if err != nil {
			return &ParseError{Frame: df.Name, Row: i + 1, Column: src, Value: s, Err: err}
		}
		derived[i] = v
	}
	df.names = append(df.names, dst)
	df.columns[dst] = derived
	return nil
}

// DeriveDate adds column dst holding the calendar date (YYYY-MM-DD) of
// the timestamps in column src.
func (df *DataFrame) DeriveDate(dst, src string) error {
	return df.Derive(dst, src, func(s string) (string, error) {
		t, err := ParseTime(s)
		if err != nil {
			return "", err
		}
		return t.Format("2006-01-02"), nil
	})
}
