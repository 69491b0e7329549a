package deps

import (
	"fmt"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/blogfs/glob"
	"github.com/aiono/blogbuild/common/loggers"
	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/helpers"
	"github.com/aiono/blogbuild/source"
	"github.com/aiono/blogbuild/tpl"
	"github.com/bep/clocks"
)

// Deps holds dependencies used by many.
// There will be normally only one instance of deps in play
// at a given time, i.e. one per Site built.
type Deps struct {
	// The logger to use.
	Log loggers.Logger `json:"-"`

	// The PathSpec to use
	*helpers.PathSpec `json:"-"`

	// The templates to use.
	tmpl tpl.Renderer

	// The SourceSpec to use
	SourceSpec *source.SourceSpec `json:"-"`

	// The ContentSpec to use
	*helpers.ContentSpec `json:"-"`

	// The file systems to use.
	Fs *blogfs.Fs `json:"-"`

	// The configuration to use
	Cfg config.Provider `json:"-"`

	// The decoded site settings.
	Site config.SiteConfig

	// Time source, e.g. for the feed's publication date.
	Clock clocks.Clock

	templateProvider ResourceProvider
}

// DepsCfg contains configuration options that can be used to configure a
// build on a global level, i.e. logging etc.
// Nil values will be given default values.
type DepsCfg struct {
	// The Logger to use.
	Logger loggers.Logger

	// The file systems to use
	Fs *blogfs.Fs

	// The configuration to use.
	Cfg config.Provider

	// The clock to use. Defaults to the system clock.
	Clock clocks.Clock

	// Template handling.
	TemplateProvider ResourceProvider
}

// ResourceProvider is used to create and refresh resources needed.
type ResourceProvider interface {
	Update(deps *Deps) error
}

func (d *Deps) Tmpl() tpl.Renderer {
	return d.tmpl
}

func (d *Deps) SetTmpl(tmpl tpl.Renderer) {
	d.tmpl = tmpl
}

// New initializes a Dep struct.
// Defaults are set for nil values,
// but TemplateProvider is always required.
func New(cfg DepsCfg) (*Deps, error) {
	if cfg.TemplateProvider == nil {
		panic("Must have a TemplateProvider")
	}

	if cfg.Cfg == nil {
		return nil, fmt.Errorf("deps: no config provided")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = loggers.NewDefault()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clocks.System()
	}

	site, err := config.DecodeSiteConfig(cfg.Cfg)
	if err != nil {
		return nil, err
	}

	fs := cfg.Fs
	if fs == nil {
		logger.Process("New Fs", "source and publish file systems from config")
		if fs, err = blogfs.NewDefault(cfg.Cfg); err != nil {
			return nil, err
		}
	}

	ps := helpers.NewPathSpec(fs, cfg.Cfg)

	logger.Process("New content Spec", "content converter provider inside")
	contentSpec, err := helpers.NewContentSpec(cfg.Cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Process("New source Spec", "with source filesystem and ignore filter")
	filter, err := glob.NewFilenameFilter(site.IgnoreFiles)
	if err != nil {
		return nil, fmt.Errorf("ignoreFiles: %w", err)
	}
	sp := source.NewSourceSpec(fs.Source, filter)

	d := &Deps{
		Log:              logger,
		PathSpec:         ps,
		SourceSpec:       sp,
		ContentSpec:      contentSpec,
		Fs:               fs,
		Cfg:              cfg.Cfg,
		Site:             site,
		Clock:            clock,
		templateProvider: cfg.TemplateProvider,
	}

	return d, nil
}

// LoadResources loads templates.
func (d *Deps) LoadResources() error {
	if err := d.templateProvider.Update(d); err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	return nil
}
