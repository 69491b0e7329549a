package tplimpl

import (
	"fmt"

	"github.com/aiono/blogbuild/deps"
	"github.com/aiono/blogbuild/tpl"
)

// TemplatesDir is where templates live, relative to the content root.
const TemplatesDir = "templates"

// TemplateProvider manages templates.
type TemplateProvider struct{}

// DefaultTemplateProvider is a globally available TemplateProvider.
var DefaultTemplateProvider *TemplateProvider

// Update creates the Renderer for the configured template engine and sets
// it on d.
func (*TemplateProvider) Update(d *deps.Deps) error {
	r, err := newRenderer(d)
	if err != nil {
		return err
	}
	d.SetTmpl(r)
	return nil
}

func newRenderer(d *deps.Deps) (tpl.Renderer, error) {
	funcs := createFuncMap(d)

	switch d.Site.TemplateEngine {
	case tpl.EngineGo, "":
		d.Log.Process("New Go templates", "text/template with missingkey=error")
		return newGoEngine(funcs), nil
	case tpl.EngineDjango:
		d.Log.Process("New Django templates", "pongo2 set loading includes from "+TemplatesDir)
		return newDjangoEngine(d.Fs.Source, TemplatesDir, funcs), nil
	default:
		return nil, fmt.Errorf("unknown template engine %q", d.Site.TemplateEngine)
	}
}
