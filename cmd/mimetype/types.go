package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

type typesEntry struct {
	Extension string `json:"extension" yaml:"extension"`
	MediaType string `json:"mediaType" yaml:"mediaType"`
}

func typesCmd(opts *options) *cli.Command {
	var filter string

	return &cli.Command{
		Name:  "types",
		Usage: "Print every extension and its media type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "only print extensions of this type/subtype",
				Destination: &filter,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table, err := opts.loadTable()
			if err != nil {
				return err
			}

			extensions := table.Extensions()
			if filter != "" {
				extensions = table.ExtensionsByType(filter)
			}

			entries := make([]typesEntry, 0, len(extensions))
			for _, ext := range extensions {
				m, ok := table.ByExtension(ext)
				if !ok {
					continue
				}
				entries = append(entries, typesEntry{Extension: ext, MediaType: m.Serialize()})
			}

			return writeOutput(cmd.Root().Writer, opts.output, entries, func(w io.Writer) error {
				for _, entry := range entries {
					if _, err := fmt.Fprintf(w, "%s\t%s\n", entry.Extension, entry.MediaType); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
