package helpers

import (
	"fmt"

	"github.com/aiono/blogbuild/common/loggers"
	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/markup"
	"github.com/aiono/blogbuild/markup/converter"
)

// ContentSpec provides functionality to render markdown content.
type ContentSpec struct {
	Converters markup.ConverterProvider

	Cfg config.Provider
}

// NewContentSpec returns a ContentSpec initialized
// with the appropriate fields from the given config.Provider.
func NewContentSpec(cfg config.Provider, logger loggers.Logger) (*ContentSpec, error) {
	converterProvider, err := markup.NewConverterProvider(converter.ProviderConfig{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	return &ContentSpec{
		Converters: converterProvider,
		Cfg:        cfg,
	}, nil
}

// ResolveMarkup returns the converter name to use for the given file
// extension or markup name, or an empty string if there is none.
func (c *ContentSpec) ResolveMarkup(in string) string {
	if conv := c.Converters.Get(in); conv != nil {
		return conv.Name()
	}
	return ""
}

// RenderMarkdown converts the markdown src, read from filename, to HTML.
func (c *ContentSpec) RenderMarkdown(filename string, src []byte) (string, error) {
	cp := c.Converters.Get("markdown")
	conv, err := cp.New(converter.DocumentContext{
		DocumentName: BaseName(filename),
		Filename:     filename,
	})
	if err != nil {
		return "", err
	}

	res, err := conv.Convert(converter.RenderContext{Src: src})
	if err != nil {
		return "", fmt.Errorf("convert %q: %w", filename, err)
	}

	return string(res.Bytes()), nil
}
