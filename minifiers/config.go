package minifiers

import (
	"fmt"

	"github.com/aiono/blogbuild/config"
	"github.com/mitchellh/mapstructure"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/minify/v2/xml"
)

type minifyConfig struct {
	// Whether to minify the published output (the files written to /public).
	MinifyOutput bool

	DisableHTML bool
	DisableCSS  bool
	DisableJS   bool
	DisableJSON bool
	DisableSVG  bool
	DisableXML  bool

	Tdewolff tdewolffConfig
}

type tdewolffConfig struct {
	HTML html.Minifier
	CSS  css.Minifier
	JS   js.Minifier
	JSON json.Minifier
	SVG  svg.Minifier
	XML  xml.Minifier
}

var defaultTdewolffConfig = tdewolffConfig{
	HTML: html.Minifier{
		KeepDocumentTags:        true,
		KeepConditionalComments: true,
		KeepEndTags:             true,
		KeepDefaultAttrVals:     true,
		KeepWhitespace:          false,
	},
	CSS: css.Minifier{
		Precision: 0,
		KeepCSS2:  true,
	},
	JS:   js.Minifier{},
	JSON: json.Minifier{},
	SVG: svg.Minifier{
		KeepComments: false,
		Precision:    0,
	},
	XML: xml.Minifier{
		KeepWhitespace: false,
	},
}

var defaultConfig = minifyConfig{
	Tdewolff: defaultTdewolffConfig,
}

// decodeConfig reads the minify setting. It is either a bool, as set by the
// --minify flag, or a table with per type settings.
func decodeConfig(cfg config.Provider) (conf minifyConfig, err error) {
	conf = defaultConfig

	v := cfg.Get("minify")
	if v == nil {
		return
	}

	if b, ok := v.(bool); ok {
		conf.MinifyOutput = b
		return
	}

	m := cfg.GetParams("minify")
	if m == nil {
		conf.MinifyOutput = cfg.GetBool("minify")
		return
	}

	if err = mapstructure.WeakDecode(m, &conf); err != nil {
		err = fmt.Errorf("failed to decode minify config: %w", err)
	}

	return
}
