package tui

import (
	"time"

	"github.com/akasprzok/pie/internal/dataset"
	"github.com/akasprzok/pie/internal/piechart"
	"github.com/akasprzok/pie/internal/prometheus"
)

// Source produces the chart input on every (re)load.
type Source interface {
	Describe() string
	Load() (piechart.Input, []string, error)
}

// StaticSource always yields the same input.
type StaticSource struct {
	Input piechart.Input
}

func (StaticSource) Describe() string {
	return "flags"
}

func (s StaticSource) Load() (piechart.Input, []string, error) {
	return s.Input.Clone(), nil, nil
}

// FileSource reads a YAML, JSON or CSV data file on every load.
type FileSource struct {
	Path string
}

func (s FileSource) Describe() string {
	return s.Path
}

func (s FileSource) Load() (piechart.Input, []string, error) {
	in, err := dataset.Load(s.Path)
	return in, nil, err
}

// QuerySource runs a Prometheus instant query on every load.
type QuerySource struct {
	Client  prometheus.Client
	Query   string
	Label   string
	Timeout time.Duration
}

func (s QuerySource) Describe() string {
	return s.Query
}

func (s QuerySource) Load() (piechart.Input, []string, error) {
	warnings, vector, err := s.Client.Query(s.Query, s.Timeout)
	if err != nil {
		return piechart.Input{}, warnings, err
	}
	return prometheus.VectorInput(vector, s.Label), warnings, nil
}
