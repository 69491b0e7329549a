package markup

import (
	"fmt"
	"strings"

	"github.com/aiono/blogbuild/markup/converter"
	"github.com/aiono/blogbuild/markup/goldmark"
	"github.com/aiono/blogbuild/markup/highlight"
	"github.com/aiono/blogbuild/markup/markup_config"
)

// ConverterProvider looks up content converters by name or file extension.
type ConverterProvider interface {
	Get(name string) converter.Provider
	GetMarkupConfig() markup_config.Config
	GetHighlighter() highlight.Highlighter
}

// NewConverterProvider creates a ConverterProvider from the markup section
// of cfg.Cfg.
func NewConverterProvider(cfg converter.ProviderConfig) (ConverterProvider, error) {
	converters := make(map[string]converter.Provider)

	markupConfig, err := markup_config.Decode(cfg.Cfg)
	if err != nil {
		return nil, err
	}

	cfg.MarkupConfig = markupConfig
	if cfg.Highlighter == nil {
		cfg.Highlighter = highlight.New(markupConfig.Highlight)
	}

	defaultHandler := markupConfig.DefaultMarkdownHandler
	add := func(p converter.ProviderProvider, aliases ...string) error {
		c, err := p.New(cfg)
		if err != nil {
			return err
		}

		name := c.Name()

		aliases = append(aliases, name)

		if strings.EqualFold(name, defaultHandler) {
			aliases = append(aliases, "markdown", "md")
		}

		addConverter(converters, c, aliases...)
		return nil
	}

	if err := add(goldmark.Provider); err != nil {
		return nil, err
	}

	if _, found := converters["markdown"]; !found {
		return nil, fmt.Errorf("unknown markdown handler %q", defaultHandler)
	}

	return &converterRegistry{
		config:     cfg,
		converters: converters,
	}, nil
}

func addConverter(m map[string]converter.Provider, c converter.Provider, aliases ...string) {
	for _, alias := range aliases {
		m[alias] = c
	}
}

type converterRegistry struct {
	// Maps name (md, markdown, goldmark etc.) to a converter provider.
	// Note that this is also used for aliasing, so the same converter
	// may be registered multiple times.
	// All names are lower case.
	converters map[string]converter.Provider

	config converter.ProviderConfig
}

func (r *converterRegistry) Get(name string) converter.Provider {
	return r.converters[strings.ToLower(name)]
}

func (r *converterRegistry) GetHighlighter() highlight.Highlighter {
	return r.config.Highlighter
}

func (r *converterRegistry) GetMarkupConfig() markup_config.Config {
	return r.config.MarkupConfig
}
