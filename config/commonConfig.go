package config

import (
	"fmt"
	"strings"

	"github.com/aiono/blogbuild/common/maps"
	"github.com/mitchellh/mapstructure"
)

// DefaultBaseURL is the site origin used to build absolute post URLs.
const DefaultBaseURL = "https://blog.aiono.dev"

// DefaultSettings returns the settings applied beneath any user config.
func DefaultSettings() maps.Params {
	return maps.Params{
		"baseURL":        DefaultBaseURL,
		"publishDir":     "public",
		"themeDir":       "",
		"dateFormat":     "2006-01-02",
		"templateEngine": "go",
		"minify":         false,
		"validateFeed":   true,
		"ignoreFiles":    []string{},
		"enableEmoji":    false,
		"logLevel":       "warn",
		"markup": maps.Params{
			"highlight": maps.Params{
				"codeFences": false,
				"style":      "github",
				"noClasses":  false,
			},
		},
	}
}

// SiteConfig holds the settings a build needs, decoded from a Provider.
type SiteConfig struct {
	WorkingDir string
	BaseURL    string
	PublishDir string
	ThemeDir   string

	// Go time layout used for the human readable post date.
	DateFormat string

	// Either "go" (text/template) or "django" (pongo2).
	TemplateEngine string

	ValidateFeed bool
	EnableEmoji  bool
	IgnoreFiles  []string
	LogLevel     string
}

// DecodeSiteConfig decodes cfg into a SiteConfig.
func DecodeSiteConfig(cfg Provider) (SiteConfig, error) {
	var sc SiteConfig

	m := map[string]any{}
	for _, key := range []string{
		"workingDir", "baseURL", "publishDir", "themeDir", "dateFormat", "templateEngine",
		"validateFeed", "enableEmoji", "logLevel",
	} {
		if cfg.IsSet(key) {
			m[key] = cfg.Get(key)
		}
	}
	m["ignoreFiles"] = cfg.GetStringSlice("ignoreFiles")

	if err := mapstructure.WeakDecode(m, &sc); err != nil {
		return sc, fmt.Errorf("failed to decode site config: %w", err)
	}

	sc.BaseURL = strings.TrimSuffix(sc.BaseURL, "/")
	if sc.BaseURL == "" {
		sc.BaseURL = DefaultBaseURL
	}
	if sc.DateFormat == "" {
		sc.DateFormat = "2006-01-02"
	}
	sc.TemplateEngine = strings.ToLower(sc.TemplateEngine)
	switch sc.TemplateEngine {
	case "":
		sc.TemplateEngine = "go"
	case "go", "django":
	default:
		return sc, fmt.Errorf("unknown templateEngine %q, expected \"go\" or \"django\"", sc.TemplateEngine)
	}

	return sc, nil
}
