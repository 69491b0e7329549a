package markup_config

import (
	"fmt"

	"github.com/aiono/blogbuild/common/maps"
	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/markup/goldmark/goldmark_config"
	"github.com/aiono/blogbuild/markup/highlight"
	"github.com/mitchellh/mapstructure"
)

type Config struct {
	// Default markdown handler for md/markdown extensions.
	// Default is "goldmark".
	DefaultMarkdownHandler string

	Highlight highlight.Config

	// Content renderers
	Goldmark goldmark_config.Config
}

// Decode reads the markup section of cfg on top of Default.
func Decode(cfg config.Provider) (conf Config, err error) {
	conf = Default

	m := cfg.GetParams("markup")
	if m == nil {
		return
	}

	if v, found := m["defaultmarkdownhandler"]; found {
		conf.DefaultMarkdownHandler = fmt.Sprint(v)
	}

	if v, found := m["goldmark"]; found {
		if err = mapstructure.WeakDecode(v, &conf.Goldmark); err != nil {
			return conf, fmt.Errorf("failed to decode goldmark config: %w", err)
		}
	}

	if v, found := m["highlight"]; found {
		hm, err := maps.ToStringMapE(v)
		if err != nil {
			return conf, fmt.Errorf("failed to decode highlight config: %w", err)
		}
		if conf.Highlight, err = highlight.DecodeConfig(hm); err != nil {
			return conf, err
		}
	}

	conf.Goldmark.Emoji = cfg.GetBool("enableEmoji")

	return
}

var Default = Config{
	DefaultMarkdownHandler: "goldmark",

	Highlight: highlight.DefaultConfig,

	Goldmark: goldmark_config.Default,
}
