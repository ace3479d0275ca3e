// Package dataset loads pie chart inputs from YAML, JSON and CSV files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akasprzok/pie/internal/piechart"
	"gopkg.in/yaml.v2"
)

// ErrUnsupportedFormat is returned for files that are neither YAML, JSON nor CSV.
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// document is the YAML/JSON file layout. Data entries are decoded loosely so
// that null and "NaN" are accepted as missing values.
type document struct {
	Labels []string      `yaml:"labels"`
	Data   []interface{} `yaml:"data"`
}

// Load reads the file at path, choosing the decoder by extension.
func Load(path string) (piechart.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return piechart.Input{}, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return DecodeYAML(f)
	case ".csv":
		return DecodeCSV(f)
	default:
		return piechart.Input{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// DecodeYAML reads {labels: [...], data: [...]}. JSON is accepted as YAML.
func DecodeYAML(r io.Reader) (piechart.Input, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return piechart.Input{}, fmt.Errorf("reading data: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return piechart.Input{}, fmt.Errorf("decoding data: %w", err)
	}

	in := piechart.Input{Labels: doc.Labels, Data: make([]float64, 0, len(doc.Data))}
	for i, v := range doc.Data {
		f, err := Float(v)
		if err != nil {
			return piechart.Input{}, fmt.Errorf("decoding data[%d]: %w", i, err)
		}
		in.Data = append(in.Data, f)
	}
	if in.Labels == nil {
		in.Labels = []string{}
	}
	return in, nil
}

// DecodeCSV reads label,value rows. A first row whose value does not parse is
// treated as a header. Empty values become NaN.
func DecodeCSV(r io.Reader) (piechart.Input, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return piechart.Input{}, fmt.Errorf("decoding csv: %w", err)
	}

	in := piechart.Input{Labels: []string{}, Data: []float64{}}
	for i, record := range records {
		value, err := parseValue(record[1])
		if err != nil {
			if i == 0 {
				continue
			}
			return piechart.Input{}, fmt.Errorf("decoding csv line %d: %w", i+1, err)
		}
		in.Labels = append(in.Labels, record[0])
		in.Data = append(in.Data, value)
	}
	return in, nil
}

// Float converts a loosely decoded value to a chart value. nil, empty strings
// and "NaN" become NaN; strings may carry a leading $.
func Float(v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return math.NaN(), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		return parseValue(n)
	default:
		return 0, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
}
