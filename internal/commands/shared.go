package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/akasprzok/pie/internal/charts"
	"github.com/akasprzok/pie/internal/dataset"
	"github.com/akasprzok/pie/internal/piechart"
	"gopkg.in/yaml.v2"
)

// DataFlags selects the chart input from a file or from paired flags.
type DataFlags struct {
	Labels []string  `help:"Category labels, comma separated." sep:","`
	Data   []float64 `help:"Category values, comma separated. NaN marks a missing value." sep:","`
	File   string    `help:"YAML, JSON or CSV data file." type:"existingfile" short:"f"`
}

// Empty reports whether no data was given at all.
func (d DataFlags) Empty() bool {
	return d.File == "" && len(d.Labels) == 0 && len(d.Data) == 0
}

// Input loads the selected data. Lengths are checked when the chart mounts.
func (d DataFlags) Input() (piechart.Input, error) {
	if d.File != "" {
		if len(d.Labels) > 0 || len(d.Data) > 0 {
			return piechart.Input{}, errors.New("--file cannot be combined with --labels or --data")
		}
		return dataset.Load(d.File)
	}
	in := piechart.Input{Labels: d.Labels, Data: d.Data}
	if in.Labels == nil {
		in.Labels = []string{}
	}
	if in.Data == nil {
		in.Data = []float64{}
	}
	return in, nil
}

// OutputFlags selects the output format and destination.
type OutputFlags struct {
	Output string `name:"output" short:"o" help:"Output format." default:"term" enum:"term,svg,png,html,json,yaml"`
	Out    string `name:"out" help:"Write to this file instead of stdout."`
	Width  int    `help:"Chart width, in cells for term and pixels otherwise. Defaults per format."`
	Height int    `help:"Chart height. Defaults per format."`
}

// Write renders in to the selected destination.
func (o OutputFlags) Write(stdout io.Writer, in piechart.Input) (err error) {
	w := stdout
	if o.Out != "" {
		f, ferr := os.Create(o.Out)
		if ferr != nil {
			return fmt.Errorf("creating output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch o.Output {
	case OutputJSON:
		return writeDump(w, in, toJSON)
	case OutputYAML:
		return writeDump(w, in, toYAML)
	}

	format := charts.Format(o.Output)
	lib, err := charts.ForFormat(format)
	if err != nil {
		return err
	}
	width, height := charts.DefaultSize(format)
	if o.Width > 0 {
		width = o.Width
	}
	if o.Height > 0 {
		height = o.Height
	}

	canvas := charts.NewCanvas(width, height)
	return piechart.Render(lib, canvas, in, func(*piechart.Config) error {
		if _, err := canvas.WriteTo(w); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
		if format == charts.FormatTerm {
			_, err := fmt.Fprintln(w)
			return err
		}
		slog.Debug("chart written", "format", format, "width", width, "height", height, "out", o.Out)
		return nil
	})
}

func writeDump(w io.Writer, in piechart.Input, marshal func([]map[string]interface{}) ([]byte, error)) error {
	if err := in.Validate(); err != nil {
		return err
	}
	out, err := marshal(massageInput(in))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// massageInput flattens the chart config into one record per category, with
// missing values as null.
func massageInput(in piechart.Input) []map[string]interface{} {
	cfg := piechart.NewConfig(in, piechart.Colors(in.Len()))
	legend := cfg.Legend()
	data := make([]map[string]interface{}, 0, len(legend))
	for i, item := range legend {
		var value interface{}
		if v := in.Data[i]; !math.IsNaN(v) && !math.IsInf(v, 0) {
			value = v
		}
		data = append(data, map[string]interface{}{
			"label":   in.Labels[i],
			"value":   value,
			"color":   item.FillStyle,
			"legend":  item.Text,
			"tooltip": cfg.TooltipAt(i),
			"hidden":  item.Hidden,
		})
	}
	return data
}

func toJSON(data []map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func toYAML(data []map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(data)
}
