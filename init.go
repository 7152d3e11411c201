package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phobologic/scopelist/internal/config"
)

const (
	defaultConfigPath = ".scopelist.yaml"
	configHeader      = "# scopelist configuration. Environment variables (SCOPELIST_*) override these values.\n"
)

// newInitCmd implements `scopelist init`, which writes a starter config file
// holding the built-in defaults.
func newInitCmd(stdout, stderr io.Writer) *cobra.Command {
	var dryRun, force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default settings",
		Long: `Write a scopelist config file holding the default settings so they can be
edited. path defaults to ./` + defaultConfigPath + `. An existing file is left
untouched unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			content, err := generateConfig()
			if err != nil {
				return err
			}

			// --dry-run: just print what would be written.
			if dryRun {
				_, _ = fmt.Fprint(stdout, content)
				return nil
			}

			path := defaultConfigPath
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			_, _ = fmt.Fprintf(stderr, "wrote scopelist config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print what would be written without creating the file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// generateConfig renders the default configuration with a leading comment.
func generateConfig() (string, error) {
	cfg := config.Default()
	body, err := cfg.YAML()
	if err != nil {
		return "", err
	}
	return configHeader + strings.TrimRight(body, "\n") + "\n", nil
}
