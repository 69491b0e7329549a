// Package tpl defines the data model templates are rendered against and
// the contract template engines implement.
package tpl

import (
	"fmt"
)

const (
	EngineGo     = "go"
	EngineDjango = "django"
)

// Renderer renders a template source against a Context.
type Renderer interface {
	// Render parses src, named name for error reporting, and executes it
	// against ctx. Failures are returned as a *RenderError.
	Render(name, src string, ctx Context) (string, error)
}

// RendererFunc is an adapter allowing an ordinary function to be used as a Renderer.
type RendererFunc func(name, src string, ctx Context) (string, error)

func (f RendererFunc) Render(name, src string, ctx Context) (string, error) {
	return f(name, src, ctx)
}

// RenderError is a failure to parse or execute a template.
type RenderError struct {
	// The template name, e.g. "post.html".
	Name string

	// The engine that failed, one of EngineGo or EngineDjango.
	Engine string

	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %q (%s): %v", e.Name, e.Engine, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
