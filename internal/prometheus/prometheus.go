package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/prometheus/prometheus/promql/parser"
)

type prometheusClient struct {
	v1api v1.API
}

// Client runs instant queries whose samples become pie categories.
type Client interface {
	Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error)
}

func NewClient(url string) (Client, error) {
	if url == "" {
		return nil, fmt.Errorf("creating prometheus client: no URL given")
	}
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	v1api := v1.NewAPI(client)
	return &prometheusClient{v1api: v1api}, nil
}

func (c *prometheusClient) Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error) {
	var vector model.Vector
	if err := ValidateQuery(query); err != nil {
		return nil, vector, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	result, warnings, err := c.v1api.Query(ctx, query, time.Now(), v1.WithTimeout(timeout))
	if err != nil {
		return warnings, vector, err
	}

	switch result.Type() {
	case model.ValVector:
		v := result.(model.Vector)
		return warnings, v, nil
	case model.ValNone, model.ValScalar, model.ValMatrix, model.ValString:
		return warnings, vector, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return warnings, vector, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

// ValidateQuery checks PromQL syntax without contacting the server.
func ValidateQuery(query string) error {
	if _, err := parser.ParseExpr(query); err != nil {
		return fmt.Errorf("parsing query: %w", err)
	}
	return nil
}

// FormatQuery pretty-prints a query, returning it unchanged if it does not parse.
func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}
