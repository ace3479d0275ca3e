package commands

import (
	"errors"
	"time"

	"github.com/akasprzok/pie/internal/prometheus"
	"github.com/akasprzok/pie/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// TUICmd is the Kong command for the interactive TUI mode.
type TUICmd struct {
	DataFlags `embed:""`

	Query         string        `help:"Prometheus instant query to chart instead of static data." short:"q"`
	PrometheusURL string        `help:"URL of the Prometheus endpoint." short:"p" env:"PIE_PROMETHEUS_URL" name:"prometheus-url"`
	Label         string        `help:"Metric label naming each slice." short:"l"`
	Refresh       time.Duration `help:"Reload interval; 0 disables." default:"30s"`
}

// Run starts the interactive TUI.
func (t *TUICmd) Run(ctx *Context) error {
	source, err := t.source(ctx, prometheus.NewClient)
	if err != nil {
		return err
	}

	model := tui.NewModel(source, t.Refresh)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}

func (t *TUICmd) source(ctx *Context, newClient func(string) (prometheus.Client, error)) (tui.Source, error) {
	if t.Query != "" {
		if !t.DataFlags.Empty() {
			return nil, errors.New("--query cannot be combined with --file, --labels or --data")
		}
		if err := prometheus.ValidateQuery(t.Query); err != nil {
			return nil, err
		}
		client, err := newClient(t.PrometheusURL)
		if err != nil {
			return nil, err
		}
		return tui.QuerySource{Client: client, Query: t.Query, Label: t.Label, Timeout: ctx.Timeout}, nil
	}

	if t.File != "" {
		if len(t.Labels) > 0 || len(t.Data) > 0 {
			return nil, errors.New("--file cannot be combined with --labels or --data")
		}
		return tui.FileSource{Path: t.File}, nil
	}

	if t.DataFlags.Empty() {
		return nil, errors.New("one of --file, --labels/--data or --query is required")
	}
	in, err := t.DataFlags.Input()
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return tui.StaticSource{Input: in}, nil
}
