package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/akasprzok/pie/internal/commands"
	"github.com/akasprzok/pie/internal/logging"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	ctx := kong.Parse(&commands.Cli,
		kong.Name("pie"),
		kong.Description("Pie charts of labeled values for the terminal, images and the browser."),
	)

	// The TUI owns the terminal, so it only logs to the file.
	console := ctx.Command() != "tui"
	closer, err := logging.Setup(commands.Cli.LogLevel, commands.Cli.LogFile, console)
	ctx.FatalIfErrorf(err)
	defer closer.Close()

	// Call the Run() method of the selected parsed command.
	err = ctx.Run(commands.NewContext(commands.Cli.Timeout))
	ctx.FatalIfErrorf(err)
}
