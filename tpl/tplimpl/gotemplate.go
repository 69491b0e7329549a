package tplimpl

import (
	"strings"
	"sync"
	"text/template"

	"github.com/aiono/blogbuild/tpl"
)

type parsedTemplate struct {
	src string
	t   *template.Template
}

// goEngine renders templates with text/template. Output is not escaped:
// the context carries rendered HTML and raw component snippets.
type goEngine struct {
	funcs template.FuncMap

	mu        sync.RWMutex
	templates map[string]parsedTemplate
}

func newGoEngine(funcs map[string]any) *goEngine {
	return &goEngine{
		funcs:     funcs,
		templates: make(map[string]parsedTemplate),
	}
}

func (e *goEngine) Render(name, src string, ctx tpl.Context) (string, error) {
	t, err := e.lookup(name, src)
	if err != nil {
		return "", &tpl.RenderError{Name: name, Engine: tpl.EngineGo, Err: err}
	}

	var b strings.Builder
	if err := t.Execute(&b, ctx.ToAny()); err != nil {
		return "", &tpl.RenderError{Name: name, Engine: tpl.EngineGo, Err: err}
	}

	return b.String(), nil
}

// lookup returns the parsed template for name, parsing src if it has not
// been seen before.
func (e *goEngine) lookup(name, src string) (*template.Template, error) {
	e.mu.RLock()
	p, found := e.templates[name]
	e.mu.RUnlock()
	if found && p.src == src {
		return p.t, nil
	}

	t, err := template.New(name).Option("missingkey=error").Funcs(e.funcs).Parse(src)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.templates[name] = parsedTemplate{src: src, t: t}
	e.mu.Unlock()

	return t, nil
}
