// Package bloglib builds a blog: it reads the content tree, builds the
// context templates are rendered against and assembles the output files.
package bloglib

import (
	"context"
	"fmt"

	"github.com/aiono/blogbuild/deps"
	"github.com/aiono/blogbuild/minifiers"
	"github.com/aiono/blogbuild/output"
	"github.com/aiono/blogbuild/publisher"
	"github.com/aiono/blogbuild/tpl/tplimpl"
)

// The content layout, relative to the content root.
const (
	pagesDir      = "pages"
	postsDir      = "pages/posts"
	componentsDir = "components"
	cssDir        = "css"
	fontsDir      = "css/fonts"

	indexPage       = "pages/index.md"
	highlightScript = "highlight/highlight.min.js"

	postSidecarExt = "json"
)

// Site builds one blog.
type Site struct {
	*deps.Deps

	formats   output.Formats
	publisher publisher.Publisher
	minify    bool

	stats *BuildStats
}

// NewSite creates a Site from cfg. If cfg.TemplateProvider is nil, the
// default one is used.
func NewSite(cfg deps.DepsCfg) (*Site, error) {
	if cfg.TemplateProvider == nil {
		cfg.TemplateProvider = tplimpl.DefaultTemplateProvider
	}

	d, err := deps.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create deps: %w", err)
	}

	if err := d.LoadResources(); err != nil {
		return nil, err
	}

	min, err := minifiers.New(output.DefaultFormats, d.Cfg)
	if err != nil {
		return nil, err
	}

	return &Site{
		Deps:      d,
		formats:   output.DefaultFormats,
		publisher: publisher.NewDestinationPublisher(d.Fs.PublishDir, min),
		minify:    min.MinifyOutput,
		stats:     newBuildStats(),
	}, nil
}

// Stats returns the counters of the last build.
func (s *Site) Stats() *BuildStats {
	return s.stats
}

// Build assembles the site and writes it to the publish dir.
func (s *Site) Build(ctx context.Context) (output.Files, error) {
	s.Log.Process("Site Build", "start")
	s.stats = newBuildStats()

	files, err := s.Assemble()
	if err != nil {
		return nil, err
	}

	if err := s.Publish(ctx, files); err != nil {
		return nil, err
	}

	s.Log.Process("Site Build", "done")
	return files, nil
}
