package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"overcat/internal/config"
)

// resolveExportPath expands arg and checks that the export exists. An
// absent file is not a failure: a notice goes to the error stream, ok comes
// back false, and the command exits cleanly with nothing to report.
func resolveExportPath(cmd *cobra.Command, arg string) (string, bool, error) {
	path, err := config.ExpandPath(arg)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(cmd.ErrOrStderr(), "File %s does not exist, nothing to parse\n", path)
			return "", false, nil
		}
		return "", false, fmt.Errorf("inspect export %q: %w", path, err)
	}
	return path, true, nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
