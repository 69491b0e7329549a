package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Highlighter highlights code, either as a goldmark extension or on demand.
type Highlighter interface {
	Highlight(code, lang string) (string, error)
	Extender() goldmark.Extender
	Config() Config
}

// New creates a Highlighter from cfg.
func New(cfg Config) Highlighter {
	return chromaHighlighter{cfg: cfg}
}

type chromaHighlighter struct {
	cfg Config
}

func (h chromaHighlighter) Config() Config {
	return h.cfg
}

func (h chromaHighlighter) formatterOptions() []html.Option {
	return []html.Option{
		html.WithClasses(!h.cfg.NoClasses),
		html.WithLineNumbers(h.cfg.LineNos),
		html.TabWidth(h.cfg.TabWidth),
	}
}

// Extender returns a goldmark extension highlighting fenced code blocks, or
// nil if code fences are not highlighted at build time.
func (h chromaHighlighter) Extender() goldmark.Extender {
	if !h.cfg.CodeFences {
		return nil
	}
	return highlighting.NewHighlighting(
		highlighting.WithStyle(h.cfg.Style),
		highlighting.WithGuessLanguage(h.cfg.GuessSyntax),
		highlighting.WithFormatOptions(h.formatterOptions()...),
	)
}

// Highlight renders code as HTML using the lexer for lang.
func (h chromaHighlighter) Highlight(code, lang string) (string, error) {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil && h.cfg.GuessSyntax {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(h.cfg.Style)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("highlight %q: %w", lang, err)
	}

	var b strings.Builder
	if err := html.New(h.formatterOptions()...).Format(&b, style, it); err != nil {
		return "", fmt.Errorf("highlight %q: %w", lang, err)
	}
	return b.String(), nil
}
