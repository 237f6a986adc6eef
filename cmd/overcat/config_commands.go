package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"overcat/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage overcat configuration",
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigValidateCommand(ctx))
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		path      string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(path)
			var expanded string
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				expanded = defaultPath
			} else {
				var err error
				expanded, err = config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path %q: %w", target, err)
				}
			}
			if !overwrite && fileExists(expanded) {
				return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", expanded)
			}
			if err := config.CreateSample(expanded); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", expanded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Destination for the sample config")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing config file")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the active configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Logging: format=%s level=%s\n", cfg.Logging.Format, cfg.Logging.Level)
			fmt.Fprintf(out, "Report unknown attributes: %s\n", yesNo(cfg.Report.UnknownAttributes))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
