package goldmark_config

// Config configures Goldmark.
type Config struct {
	Renderer   Renderer
	Parser     Parser
	Extensions Extensions

	// Replace emoji codes such as :smile: before parsing.
	// Set from the site's enableEmoji setting.
	Emoji bool `mapstructure:"-"`
}

type Renderer struct {
	// Whether softline breaks should be rendered as '<br>'
	HardWraps bool

	// XHTML instead of HTML5.
	XHTML bool

	// Allow raw HTML etc.
	Unsafe bool
}

type Parser struct {
	// Enables custom heading ids and
	// auto generated heading ids.
	AutoHeadingID bool

	// The strategy to use when generating heading IDs.
	// Available options are "github", "github-ascii".
	// Default is "github", which will create GitHub-compatible anchor names.
	AutoHeadingIDType string

	// Enables custom attributes for titles.
	Attribute bool
}

type Extensions struct {
	Typographer    bool
	Footnote       bool
	DefinitionList bool

	// GitHub flavored markdown
	Table         bool
	Strikethrough bool
	Linkify       bool
	TaskList      bool
}

const (
	AutoHeadingIDTypeGitHub      = "github"
	AutoHeadingIDTypeGitHubAscii = "github-ascii"
)

// Default holds the default Goldmark configuration.
// Posts embed their own HTML (figures, iframes), so raw HTML is kept.
var Default = Config{
	Extensions: Extensions{
		Typographer:    false,
		Footnote:       true,
		DefinitionList: true,
		Table:          true,
		Strikethrough:  true,
		Linkify:        true,
		TaskList:       true,
	},
	Renderer: Renderer{
		Unsafe: true,
	},
	Parser: Parser{
		AutoHeadingID:     true,
		AutoHeadingIDType: AutoHeadingIDTypeGitHub,
		Attribute:         true,
	},
}
