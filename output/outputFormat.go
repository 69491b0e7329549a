package output

import (
	"sort"
	"strings"

	"github.com/aiono/blogbuild/helpers"
)

// Format represents an output representation, usually to a file on disk.
type Format struct {
	// The Name is used as an identifier.
	Name string `json:"name"`

	// The MIME type, e.g. "text/html". Used to pick a minifier.
	MediaType string `json:"mediaType"`

	// File suffixes without the leading dot.
	Suffixes []string `json:"suffixes"`

	// IsPlainText decides whether the content is text at all.
	IsPlainText bool `json:"isPlainText"`

	// IsHTML returns whether this format is in the HTML family.
	IsHTML bool `json:"isHTML"`

	// Binary formats, e.g. fonts, are copied verbatim.
	IsBinary bool `json:"isBinary"`

	// Setting this to a non-zero value will be used as the first sort criteria.
	Weight int `json:"weight"`
}

// Formats is a slice of Format.
type Formats []Format

func (formats Formats) Len() int      { return len(formats) }
func (formats Formats) Swap(i, j int) { formats[i], formats[j] = formats[j], formats[i] }
func (formats Formats) Less(i, j int) bool {
	fi, fj := formats[i], formats[j]
	if fi.Weight == fj.Weight {
		return fi.Name < fj.Name
	}

	if fj.Weight == 0 {
		return true
	}

	return fi.Weight > 0 && fi.Weight < fj.Weight
}

// GetByName gets a format by its identifier name.
func (formats Formats) GetByName(name string) (f Format, found bool) {
	for _, ff := range formats {
		if strings.EqualFold(name, ff.Name) {
			f = ff
			found = true
			return
		}
	}
	return
}

// An ordered list of built-in output formats.
var (
	HTMLFormat = Format{
		Name:      "HTML",
		MediaType: "text/html",
		Suffixes:  []string{"html", "htm"},
		IsHTML:    true,

		// Weight will be used as first sort criteria. HTML will, by default,
		// be rendered first, but set it to 10 so it's easy to put one above it.
		Weight: 10,
	}

	CSSFormat = Format{
		Name:        "CSS",
		MediaType:   "text/css",
		Suffixes:    []string{"css"},
		IsPlainText: true,
	}

	JavaScriptFormat = Format{
		Name:        "JS",
		MediaType:   "text/javascript",
		Suffixes:    []string{"js"},
		IsPlainText: true,
	}

	RSSFormat = Format{
		Name:        "RSS",
		MediaType:   "application/rss+xml",
		Suffixes:    []string{"xml", "rss"},
		IsPlainText: true,
	}

	FontFormat = Format{
		Name:      "FONT",
		MediaType: "font/woff2",
		Suffixes:  []string{"woff2", "woff", "ttf", "otf", "eot"},
		IsBinary:  true,
	}

	// OctetStreamFormat is used for files with an unknown suffix.
	OctetStreamFormat = Format{
		Name:      "OCTET",
		MediaType: "application/octet-stream",
		IsBinary:  true,
	}
)

// DefaultFormats contains the default output formats.
var DefaultFormats = func() Formats {
	f := Formats{
		HTMLFormat,
		CSSFormat,
		JavaScriptFormat,
		RSSFormat,
		FontFormat,
	}
	sort.Sort(f)
	return f
}()

// FromFilename gets a Format given a filename, falling back to
// OctetStreamFormat if the suffix is unknown.
func (formats Formats) FromFilename(filename string) (f Format, found bool) {
	ext := helpers.Ext(filename)
	if ext == "" {
		return OctetStreamFormat, false
	}
	f, found = formats.GetBySuffix(ext)
	if !found {
		f = OctetStreamFormat
	}
	return
}

// GetBySuffix gets a output format given as suffix, e.g. "html".
// It will return false if no format could be found, or if the suffix given
// is ambiguous.
// The lookup is case insensitive.
func (formats Formats) GetBySuffix(suffix string) (f Format, found bool) {
	for _, ff := range formats {
		for _, suffix2 := range ff.Suffixes {
			if strings.EqualFold(suffix, suffix2) {
				if found {
					// ambiguous
					found = false
					return
				}
				f = ff
				found = true
			}
		}
	}
	return
}
