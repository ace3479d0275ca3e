package commands

import (
	"fmt"
	"log/slog"

	"github.com/akasprzok/pie/internal/prometheus"
)

type QueryCmd struct {
	PrometheusURL string `help:"URL of the Prometheus endpoint." env:"PIE_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string `arg:"" name:"query" help:"Query to run." required:"true"`
	Label         string `help:"Metric label naming each slice. Defaults to the full metric." short:"l"`

	OutputFlags `embed:""`
}

func (q *QueryCmd) Run(ctx *Context) error {
	client, err := prometheus.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}
	return q.run(ctx, client)
}

func (q *QueryCmd) run(ctx *Context, client prometheus.Client) error {
	slog.Debug("running query", "query", prometheus.FormatQuery(q.Query))
	warnings, vector, err := client.Query(q.Query, ctx.Timeout)
	if err != nil {
		return fmt.Errorf("querying prometheus: %w", err)
	}
	if len(warnings) > 0 {
		slog.Warn("query returned warnings", "warnings", warnings)
	}
	if len(vector) == 0 {
		_, err := fmt.Fprintln(ctx.Stdout, NoData)
		return err
	}
	return q.OutputFlags.Write(ctx.Stdout, prometheus.VectorInput(vector, q.Label))
}
