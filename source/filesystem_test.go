package source

import (
	"testing"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/blogfs/glob"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestSourceSpec(t *testing.T, ignores ...string) *SourceSpec {
	fs := afero.NewMemMapFs()
	for _, name := range []string{
		"pages/posts/b.md", "pages/posts/b.json",
		"pages/posts/a.md", "pages/posts/a.json",
		"pages/posts/.hidden.md", "pages/posts/backup.md~",
		"pages/posts/next.draft.md",
		"pages/posts/README.MD",
	} {
		require.NoError(t, afero.WriteFile(fs, name, []byte(name), 0644))
	}
	require.NoError(t, fs.MkdirAll("pages/posts/sub", 0777))

	filter, err := glob.NewFilenameFilter(ignores)
	require.NoError(t, err)
	return NewSourceSpec(fs, filter)
}

func TestFilesystemFiles(t *testing.T) {
	sp := newTestSourceSpec(t)

	files, err := sp.NewFilesystem("pages/posts", "md").Files()
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.LogicalName())
	}
	require.Equal(t, []string{"README.MD", "a.md", "b.md", "next.draft.md"}, names)

	a := files[1]
	require.Equal(t, "pages/posts/a.md", a.Path())
	require.Equal(t, "a", a.BaseFileName())
	require.Equal(t, "md", a.Ext())
	require.Equal(t, "pages/posts/a.json", a.Sibling("json"))

	b, err := a.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "pages/posts/a.md", string(b))
}

func TestFilesystemIgnoreFiles(t *testing.T) {
	sp := newTestSourceSpec(t, "**.draft.md")

	files, err := sp.NewFilesystem("pages/posts", "md").Files()
	require.NoError(t, err)
	require.Len(t, files, 3)

	all, err := sp.NewFilesystem("pages/posts").Files()
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestFilesystemMissingDir(t *testing.T) {
	sp := newTestSourceSpec(t)
	_, err := sp.NewFilesystem("components").Files()
	require.Error(t, err)
	require.True(t, blogfs.IsNotExist(err))
}

func TestFilesystemIncludeHidden(t *testing.T) {
	sp := newTestSourceSpec(t, "**/readme.md")

	fs := sp.NewFilesystem("pages/posts")
	fs.IncludeHidden = true
	files, err := fs.Files()
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.LogicalName())
	}
	require.Equal(t, []string{".hidden.md", "a.json", "a.md", "b.json", "b.md", "backup.md~", "next.draft.md"}, names)
}

func TestIsHiddenFile(t *testing.T) {
	for _, name := range []string{"css/fonts/.DS_Store", "#lock.md", "pages/posts/a.md~"} {
		require.True(t, IsHiddenFile(name), name)
	}
	require.False(t, IsHiddenFile("css/fonts/inter.woff2"))
}
