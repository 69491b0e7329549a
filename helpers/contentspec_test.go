package helpers

import (
	"testing"

	"github.com/aiono/blogbuild/common/loggers"
	"github.com/aiono/blogbuild/config"
	"github.com/stretchr/testify/require"
)

func TestContentSpecRenderMarkdown(t *testing.T) {
	c, err := NewContentSpec(config.NewWithTestDefaults(), loggers.NewDiscard())
	require.NoError(t, err)

	require.Equal(t, "goldmark", c.ResolveMarkup("md"))
	require.Equal(t, "goldmark", c.ResolveMarkup("Markdown"))
	require.Equal(t, "", c.ResolveMarkup("adoc"))

	html, err := c.RenderMarkdown("pages/index.md", []byte("# Home\n\nWelcome."))
	require.NoError(t, err)
	require.Equal(t, "<h1 id=\"home\">Home</h1>\n<p>Welcome.</p>\n", html)
}
