// Package commands implements the blogbuild command line.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/aiono/blogbuild/common/blogbuild"
	"github.com/spf13/cobra"
)

// Execute runs the command line with args and returns the exit code.
func Execute(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

type rootOptions struct {
	source   string
	cfgFile  string
	logLevel string
	verbose  bool
	debug    bool
	quiet    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	bopts := &buildOptions{rootOptions: opts}

	root := &cobra.Command{
		Use:   "blogbuild",
		Short: "blogbuild builds a static blog",
		Long: `blogbuild reads a content directory (pages, posts, components,
templates and styling assets) and writes a self-contained static blog:
HTML pages, a CSS bundle, a script, an RSS feed and one page per post.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bopts.run(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.source, "source", "s", "", "filesystem path to read files relative from")
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is config.toml|yaml|json in the source dir)")
	pf.StringVar(&opts.logLevel, "logLevel", "", "log level (debug|info|warn|error)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&opts.debug, "debug", false, "debug output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "build in quiet mode")

	bopts.addFlags(root)

	root.AddCommand(newBuildCmd(bopts), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of blogbuild",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), blogbuild.GetInfo())
		},
	}
}
