package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"overcat/internal/config"
	"overcat/internal/logging"
)

// commandContext lazily resolves configuration and the shared logger so
// every subcommand sees the same settings and run id.
type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, resolved, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared logger once, writing to the command's
// error stream and tagging every line with a per-invocation run id.
func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		opts := logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cmd.ErrOrStderr(),
		}
		if value := flagValue(c.logLevelFlag); value != "" {
			opts.Level = value
		}
		if value := flagValue(c.logFormatFlag); value != "" {
			opts.Format = value
		}
		logger, err := logging.New(opts)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	})
	return c.logger, c.loggerErr
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}
