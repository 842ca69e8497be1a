package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	opts := &options{}

	return &cli.Command{
		Name:  "mimetype",
		Usage: "Look up the media types of file extensions using mime.types files",
		Flags: globalFlags(opts),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, opts.setup(cmd)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			lookupCmd(opts),
			parseCmd(opts),
			typesCmd(opts),
			serveCmd(opts),
			versionCmd(),
		},
	}
}
