package minifiers

import (
	"bytes"
	"io"
	"regexp"

	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/output"
	"github.com/tdewolff/minify/v2"
)

// Client wraps a minifier.
type Client struct {
	m *minify.M

	// Whether to minify the published output.
	MinifyOutput bool
}

// New creates a new Client with the provided output formats as the mapping
// foundation.
func New(outputFormats output.Formats, cfg config.Provider) (Client, error) {
	conf, err := decodeConfig(cfg)
	if err != nil {
		return Client{}, err
	}

	m := minify.New()

	m.Add(output.CSSFormat.MediaType, getMinifier(conf, "css"))

	m.AddRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), getMinifier(conf, "js"))

	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), getMinifier(conf, "json"))

	m.Add("image/svg+xml", getMinifier(conf, "svg"))

	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|rss\+|atom\+)?xml$`), getMinifier(conf, "xml"))

	// HTML
	for _, of := range outputFormats {
		if of.IsHTML {
			m.Add(of.MediaType, getMinifier(conf, "html"))
		}
	}

	return Client{m: m, MinifyOutput: conf.MinifyOutput}, nil
}

// getMinifier returns the appropriate minify.MinifierFunc for the MIME
// type suffix s, given the config c.
func getMinifier(c minifyConfig, s string) minify.Minifier {
	switch {
	case s == "css" && !c.DisableCSS:
		return &c.Tdewolff.CSS
	case s == "js" && !c.DisableJS:
		return &c.Tdewolff.JS
	case s == "json" && !c.DisableJSON:
		return &c.Tdewolff.JSON
	case s == "svg" && !c.DisableSVG:
		return &c.Tdewolff.SVG
	case s == "xml" && !c.DisableXML:
		return &c.Tdewolff.XML
	case s == "html" && !c.DisableHTML:
		return &c.Tdewolff.HTML
	default:
		return noopMinifier{}
	}
}

// noopMinifier implements minify.Minifier [1], but doesn't minify content. This means
// that we can avoid missing minifiers for any MIME types in our minify.M, which
// causes minify to return errors, while still allowing minification to be
// disabled for specific types.
//
// [1]: https://pkg.go.dev/github.com/tdewolff/minify#Minifier
type noopMinifier struct{}

// Minify copies r into w without transformation.
func (m noopMinifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	_, err := io.Copy(w, r)
	return err
}

// Minifies reports whether there is a minifier for the given media type.
func (m Client) Minifies(mediaType string) bool {
	_, _, min := m.m.Match(mediaType)
	return min != nil
}

// Minify minifies r into w using the minifier for mediaType. Content with
// no minifier is copied as-is.
func (m Client) Minify(mediaType string, w io.Writer, r io.Reader) error {
	_, params, min := m.m.Match(mediaType)
	if min == nil {
		_, err := io.Copy(w, r)
		return err
	}
	return min.Minify(m.m, w, r, params)
}

// MinifyBytes is the []byte variant of Minify.
func (m Client) MinifyBytes(mediaType string, b []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Minify(mediaType, &buf, bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
