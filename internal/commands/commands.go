package commands

import (
	"io"
	"os"
	"time"
)

// Context carries global settings into each command's Run.
type Context struct {
	Timeout time.Duration
	Stdout  io.Writer
}

// NewContext returns a context writing to os.Stdout.
func NewContext(timeout time.Duration) *Context {
	return &Context{Timeout: timeout, Stdout: os.Stdout}
}

var Cli struct {
	Timeout  time.Duration `help:"Timeout for Prometheus queries." default:"60s"`
	LogLevel string        `help:"Log level." default:"info" enum:"debug,info,warn,error" env:"PIE_LOG_LEVEL" name:"log-level"`
	LogFile  string        `help:"Log file, rotated by size." default:"logs/pie.log" env:"PIE_LOG_FILE" name:"log-file"`

	Render      RenderCmd      `cmd:"" help:"Render a pie chart from flags or a data file."`
	Query       QueryCmd       `cmd:"" help:"Render a pie chart from a Prometheus instant query."`
	TUI         TUICmd         `cmd:"" name:"tui" help:"Interactive terminal pie chart."`
	Serve       ServeCmd       `cmd:"" help:"Serve the pie chart over HTTP."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}
