package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/MatthiasKunnen/mimetype/mediatype"
	"github.com/urfave/cli/v3"
)

type parseResult struct {
	MediaType  string            `json:"mediaType" yaml:"mediaType"`
	Parameters map[string]string `json:"parameters" yaml:"parameters"`
}

func parseCmd(opts *options) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a media type such as 'text/html; charset=utf-8'",
		ArgsUsage: "MEDIATYPE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("parse: expected exactly one media type, got %d arguments", cmd.Args().Len())
			}

			essence, params, err := mediatype.Parse(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			result := parseResult{MediaType: essence, Parameters: params}
			return writeOutput(cmd.Root().Writer, opts.output, result, func(w io.Writer) error {
				if _, err := fmt.Fprintln(w, essence); err != nil {
					return err
				}
				for _, key := range slices.Sorted(maps.Keys(params)) {
					if _, err := fmt.Fprintf(w, "%s=%s\n", key, params[key]); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
