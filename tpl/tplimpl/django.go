package tplimpl

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/helpers"
	"github.com/aiono/blogbuild/tpl"
	"github.com/flosch/pongo2/v6"
	"github.com/spf13/afero"
)

func init() {
	for name, fn := range map[string]func(string) string{
		"plaintext": helpers.PlainText,
		"summary":   helpers.ExtractSummary,
	} {
		if pongo2.FilterExists(name) {
			continue
		}
		fn := fn
		pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(fn(in.String())), nil
		})
	}

	// get looks up a key that is not a valid identifier, e.g.
	// {{ components|get:"header.html"|safe }}.
	if !pongo2.FilterExists("get") {
		pongo2.RegisterFilter("get", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			m, ok := in.Interface().(map[string]any)
			if !ok {
				return nil, &pongo2.Error{
					Sender:    "filter:get",
					OrigError: fmt.Errorf("%w: cannot get %q from %T", tpl.ErrWrongKind, param.String(), in.Interface()),
				}
			}
			return pongo2.AsValue(m[param.String()]), nil
		})
	}
}

// djangoEngine renders Django syntax templates with pongo2. Unlike the Go
// engine, pongo2 escapes output, so HTML values need the safe filter.
type djangoEngine struct {
	set *pongo2.TemplateSet
}

func newDjangoEngine(fs afero.Fs, dir string, funcs map[string]any) *djangoEngine {
	set := pongo2.NewSet("blogbuild", &aferoLoader{fs: fs, dir: dir})
	set.Globals.Update(pongo2.Context(funcs))
	return &djangoEngine{set: set}
}

func (e *djangoEngine) Render(name, src string, ctx tpl.Context) (string, error) {
	t, err := e.set.FromString(src)
	if err != nil {
		return "", &tpl.RenderError{Name: name, Engine: tpl.EngineDjango, Err: err}
	}

	m, ok := ctx.ToAny().(map[string]any)
	if !ok {
		return "", &tpl.RenderError{
			Name:   name,
			Engine: tpl.EngineDjango,
			Err:    fmt.Errorf("%w: context must be an object, got %s", tpl.ErrWrongKind, ctx.Kind()),
		}
	}
	s, err := t.Execute(pongo2.Context(m))
	if err != nil {
		return "", &tpl.RenderError{Name: name, Engine: tpl.EngineDjango, Err: err}
	}

	return s, nil
}

// aferoLoader loads included templates from dir in fs.
type aferoLoader struct {
	fs  afero.Fs
	dir string
}

func (l *aferoLoader) Abs(base, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.dir, name)
}

func (l *aferoLoader) Get(path string) (io.Reader, error) {
	b, err := blogfs.ReadFile(l.fs, path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}
