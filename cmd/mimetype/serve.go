package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/MatthiasKunnen/mimetype/httpapi"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"
)

func serveCmd(opts *options) *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve extension lookups over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Sources:     cli.EnvVars("MIMETYPE_ADDR"),
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       10 * time.Second,
				Destination: &readTimeout,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if opts.config.Address != "" && !cmd.IsSet("addr") {
				addr = opts.config.Address
			}

			table, err := opts.loadTable()
			if err != nil {
				return err
			}

			e := echo.New()
			e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
				Generator: uuid.NewString,
			}))
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			httpapi.NewServer(table).Register(e)

			slog.Info("starting server", "address", addr, "extensions", table.Len())
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
