package main

import (
	"errors"

	"github.com/spf13/cobra"

	"overcat/internal/logging"
	"overcat/internal/overcast"
)

// errReported signals main that the failure already went through the
// structured logger and only the exit status remains.
var errReported = errors.New("failure already reported")

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "overcat [file]",
		Short:         "Parse Overcast OPML exports into clean JSON",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			return runParse(cmd, ctx, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Override configured log format (console, json)")

	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runParse(cmd *cobra.Command, ctx *commandContext, arg string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	path, ok, err := resolveExportPath(cmd, arg)
	if err != nil || !ok {
		return err
	}
	logger, err := ctx.ensureLogger(cmd)
	if err != nil {
		return err
	}

	export, _, err := overcast.LoadFile(path, overcast.Options{
		ReportUnknownAttrs: cfg.Report.UnknownAttributes,
		Logger:             logging.NewComponentLogger(logger, "extract"),
	})
	if err != nil {
		logger.Error("unable to parse export", logging.Error(err), logging.String(logging.FieldPath, path))
		return errReported
	}
	return writeJSON(cmd, export)
}
