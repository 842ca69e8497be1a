package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MatthiasKunnen/mimetype/mimetypes"
	"github.com/urfave/cli/v3"
)

// options holds the global flags, after the config file has been applied.
type options struct {
	files      []string
	configPath string
	logLevel   string
	output     string
	config     Config
}

func globalFlags(opts *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "mime.types file to load, can be repeated (default: system and XDG files)",
			Sources:     cli.EnvVars("MIMETYPE_FILES"),
			Destination: &opts.files,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: $XDG_CONFIG_HOME/mimetype/config.yaml)",
			Sources:     cli.EnvVars("MIMETYPE_CONFIG"),
			Destination: &opts.configPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Sources:     cli.EnvVars("MIMETYPE_LOG_LEVEL"),
			Destination: &opts.logLevel,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "output format (text, json, yaml)",
			Value:       outputText,
			Destination: &opts.output,
		},
	}
}

// setup loads the config file, applies it to flags that were not set explicitly, and
// installs the default logger.
func (o *options) setup(cmd *cli.Command) error {
	path, err := configPath(o.configPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	o.config = cfg

	if len(cfg.Files) > 0 && !cmd.IsSet("file") {
		o.files = cfg.Files
	}
	if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
		o.logLevel = cfg.LogLevel
	}
	if cfg.Output != "" && !cmd.IsSet("output") {
		o.output = cfg.Output
	}

	if !isOutputFormat(o.output) {
		return fmt.Errorf("unknown output format %q, expected one of text, json, yaml", o.output)
	}

	slog.SetDefault(newLogger(os.Stderr, o.logLevel))
	slog.Debug("configuration loaded", "config", path, "files", o.files)

	return nil
}

// loadTable loads the mime.types files given by the user. Without files, the system and XDG
// files are used and files that fail to load are only logged.
func (o *options) loadTable() (*mimetypes.Table, error) {
	if len(o.files) == 0 {
		table, err := mimetypes.LoadFromOs()
		if err != nil {
			slog.Warn("not all mime.types files could be loaded", "error", err)
		}

		return table, nil
	}

	table := mimetypes.NewTable()
	for _, path := range o.files {
		if err := table.LoadFile(path); err != nil {
			return nil, err
		}
	}

	slog.Debug("mime.types loaded", "files", o.files, "extensions", table.Len())
	return table, nil
}
