package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/bloglib"
	"github.com/aiono/blogbuild/common/loggers"
	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/deps"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
)

type buildOptions struct {
	*rootOptions

	destination string
	baseURL     string
	engine      string
	minify      bool
	clean       bool
}

func (o *buildOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.destination, "destination", "d", "", "filesystem path to write files to")
	f.StringVarP(&o.baseURL, "baseURL", "b", "", "site origin used for absolute post URLs, e.g. https://blog.example.org")
	f.StringVar(&o.engine, "engine", "", "template engine, go or django")
	f.BoolVar(&o.minify, "minify", false, "minify any supported output format (HTML, XML etc.)")
	f.BoolVar(&o.clean, "clean", false, "remove everything in the destination before building")
}

func newBuildCmd(o *buildOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the blog into the destination directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}
	o.addFlags(cmd)
	return cmd
}

func (o *buildOptions) loadConfig(cmd *cobra.Command) (config.Provider, error) {
	workingDir, err := filepath.Abs(o.source)
	if err != nil {
		return nil, err
	}

	cfg, filename, err := config.LoadConfig(blogfs.Os, workingDir, o.cfgFile)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		filename = "defaults"
	}
	if !o.quiet {
		cmd.Printf("Using config from %s\n", filename)
	}

	// Flags the user set win over the config file.
	flagsCfg := config.New()
	flags := cmd.Flags()
	for _, f := range []struct {
		flag string
		key  string
		v    any
	}{
		{"destination", "publishDir", o.destination},
		{"baseURL", "baseURL", o.baseURL},
		{"engine", "templateEngine", o.engine},
		{"minify", "minify", o.minify},
		{"logLevel", "logLevel", o.logLevel},
	} {
		if flags.Changed(f.flag) {
			flagsCfg.Set(f.key, f.v)
		}
	}

	return config.NewCompositeConfig(cfg, flagsCfg), nil
}

func (o *buildOptions) threshold(cfg config.Provider) jww.Threshold {
	switch {
	case o.quiet:
		return jww.LevelError
	case o.debug:
		return jww.LevelDebug
	case o.verbose:
		return jww.LevelInfo
	default:
		return loggers.ThresholdFromString(cfg.GetString("logLevel"))
	}
}

func (o *buildOptions) run(cmd *cobra.Command) error {
	start := time.Now()

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := loggers.New(o.threshold(cfg), cmd.ErrOrStderr())

	site, err := bloglib.NewSite(deps.DepsCfg{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if o.clean {
		if err := site.CleanPublishDir(); err != nil {
			return fmt.Errorf("clean %q: %w", site.Fs.PublishDirPath, err)
		}
	}

	if _, err := site.Build(cmd.Context()); err != nil {
		return err
	}

	if !o.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Built %s into %s in %d ms\n", site.Stats(), site.Fs.PublishDirPath, time.Since(start).Milliseconds())
	}

	return nil
}
