package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"
)

type lookupResult struct {
	Extension  string            `json:"extension" yaml:"extension"`
	Found      bool              `json:"found" yaml:"found"`
	MediaType  string            `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	Type       string            `json:"type,omitempty" yaml:"type,omitempty"`
	SubType    string            `json:"subType,omitempty" yaml:"subType,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

func lookupCmd(opts *options) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Print the media type of each extension",
		ArgsUsage: "EXTENSION...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("lookup: at least one extension is required")
			}

			table, err := opts.loadTable()
			if err != nil {
				return err
			}

			results := make([]lookupResult, 0, cmd.Args().Len())
			var missing []string
			for _, arg := range cmd.Args().Slice() {
				ext := strings.TrimPrefix(arg, ".")
				m, ok := table.ByExtension(ext)
				if !ok {
					missing = append(missing, ext)
					results = append(results, lookupResult{Extension: ext})
					continue
				}

				results = append(results, lookupResult{
					Extension:  ext,
					Found:      true,
					MediaType:  m.Serialize(),
					Type:       m.Type,
					SubType:    m.SubType,
					Parameters: m.Parameters,
				})
			}

			err = writeOutput(cmd.Root().Writer, opts.output, results, func(w io.Writer) error {
				for _, r := range results {
					if !r.Found {
						continue
					}
					if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Extension, r.MediaType); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			if len(missing) > 0 {
				return fmt.Errorf("lookup: no media type for %s", strings.Join(missing, ", "))
			}

			return nil
		},
	}
}
