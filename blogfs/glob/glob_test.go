package glob

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetGlob(t *testing.T) {
	g, err := GetGlob("pages/posts/*.draft.md")
	require.NoError(t, err)
	require.True(t, g.Match("pages/posts/next.draft.md"))
	require.False(t, g.Match("pages/posts/next.md"))

	g2, err := GetGlob("pages/posts/*.draft.md")
	require.NoError(t, err)
	require.Equal(t, g, g2)

	_, err = GetGlob("[")
	require.Error(t, err)
}

func TestFilenameFilter(t *testing.T) {
	f, err := NewFilenameFilter([]string{"**.draft.md", "css/fonts/*.txt"})
	require.NoError(t, err)

	require.True(t, f.Match("pages/posts/hello.md"))
	require.False(t, f.Match("/pages/posts/Hello.DRAFT.md"))
	require.False(t, f.Match("css/fonts/LICENSE.txt"))
	require.True(t, f.Match("css/fonts/inter.woff2"))

	var nilFilter *FilenameFilter
	require.True(t, nilFilter.Match("anything"))

	_, err = NewFilenameFilter([]string{"["})
	require.Error(t, err)
}
