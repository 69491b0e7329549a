package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mitchellh/mapstructure"
)

// DefaultConfig holds the default highlighting configuration.
var DefaultConfig = Config{
	CodeFences:  false,
	NoClasses:   false,
	Style:       "github",
	TabWidth:    4,
	GuessSyntax: false,
}

// Config configures server side highlighting of fenced code blocks.
type Config struct {
	// Highlight fenced code blocks at build time. When false, code blocks
	// are left for highlight.js in the browser.
	CodeFences bool

	// Use inline styles instead of CSS classes.
	NoClasses bool

	Style string

	LineNos bool

	TabWidth int

	// Guess the language when a code fence has none.
	GuessSyntax bool
}

// DecodeConfig decodes m on top of DefaultConfig.
func DecodeConfig(m map[string]any) (Config, error) {
	cfg := DefaultConfig
	if m == nil {
		return cfg, nil
	}
	if err := mapstructure.WeakDecode(m, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode highlight config: %w", err)
	}
	if _, found := styles.Registry[cfg.Style]; !found {
		return cfg, fmt.Errorf("unknown highlight style %q", cfg.Style)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultConfig.TabWidth
	}
	return cfg, nil
}
