package commands

import "time"

const (
	// OutputJSON and OutputYAML dump the legend instead of drawing a chart.
	OutputJSON = "json"
	OutputYAML = "yaml"

	// DefaultRefresh is the TUI reload interval.
	DefaultRefresh = 30 * time.Second

	// ShutdownTimeout bounds graceful HTTP server shutdown.
	ShutdownTimeout = 10 * time.Second

	// NoData is printed when a query returns no samples.
	NoData = "No Data"
)
