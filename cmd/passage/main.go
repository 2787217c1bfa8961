// Command passage is the operator CLI: it resolves citations, renders
// passages without the HTTP server, imports Zefania files into PostgreSQL
// and applies database migrations.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/interlinear/internal/app"
)

// CLI defines the command-line interface for passage.
var CLI struct {
	Config string `help:"YAML config file" env:"CONFIG_PATH" type:"path"`

	Resolve ResolveCmd `cmd:"" help:"Parse a citation and print its canonical form and URL segment"`
	Render  RenderCmd  `cmd:"" help:"Render a passage in one of the output formats"`
	Import  ImportCmd  `cmd:"" help:"Import a Zefania XML file into the database"`
	Migrate MigrateCmd `cmd:"" help:"Apply database migrations"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("passage"),
		kong.Description("Interlinear passage rendering tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx.BindTo(sigCtx, (*context.Context)(nil))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	_, err := os.Stdout.WriteString("passage " + app.BuildVersion() + "\n")
	return err
}
