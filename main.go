// scopelist prints the symbols of a ctags index grouped by enclosing scope.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/scopelist/internal/config"
	"github.com/phobologic/scopelist/internal/exclude"
	"github.com/phobologic/scopelist/internal/group"
	"github.com/phobologic/scopelist/internal/listing"
	"github.com/phobologic/scopelist/internal/logging"
	"github.com/phobologic/scopelist/internal/tagfile"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

type rootOptions struct {
	configPath  string
	excludeFrom string
	logLevel    string
	strict      bool
	printConfig bool
	showVersion bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "scopelist [flags] [tags-file ...]",
		Short: "List ctags symbols grouped by enclosing scope",
		Long: `Read one or more ctags index files (default ./tags) and print every symbol
grouped under the outermost segment of its scope. Methods are printed with a
trailing "()". Later records override earlier ones for the same scope and
name, across files in the order given.

"init" is a subcommand; pass ./init to read a tags file with that name.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				_, _ = fmt.Fprintf(stdout, "scopelist %s\n", version)
				return nil
			}
			return runList(cmd, args, &opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringVar(&opts.excludeFrom, "exclude-from", "", "gitignore-style file of source paths to exclude")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&opts.strict, "strict", false, "fail on malformed lines instead of skipping them")
	f.BoolVar(&opts.printConfig, "print-config", false, "print the effective configuration and exit")
	f.BoolVarP(&opts.showVersion, "version", "V", false, "show version and exit")

	cmd.AddCommand(newInitCmd(stdout, stderr))
	return cmd
}

func runList(cmd *cobra.Command, args []string, opts *rootOptions, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("exclude-from") {
		cfg.ExcludeFrom = opts.excludeFrom
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if len(args) > 0 {
		cfg.Tags = args
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.printConfig {
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, _ = io.WriteString(stdout, out)
		return nil
	}

	logger := logging.New(cfg.Log, stderr)

	var paths group.PathMatcher
	if cfg.ExcludeFrom != "" {
		m, err := exclude.Load(cfg.ExcludeFrom)
		if err != nil {
			return err
		}
		paths = m
	}

	filter := group.Filter{
		SkipPrefixes: cfg.SkipPrefixes,
		SkipNames:    cfg.SkipNames,
	}

	files, err := tagfile.LoadAll(cmd.Context(), cfg.Tags, tagfile.Options{
		Strict: cfg.Strict,
		Skip:   filter.Skip,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	g := group.New(filter, paths)
	for i, records := range files {
		added := g.Add(records)
		logger.Debug("grouped tags file", "path", cfg.Tags[i], "records", len(records), "kept", added)
	}

	tbl := g.Table()
	logger.Debug("listing built", "scopes", len(tbl), "symbols", tbl.Len())

	_, err = io.WriteString(stdout, listing.NewEncoder(cfg.MethodKinds...).Encode(tbl))
	return err
}
