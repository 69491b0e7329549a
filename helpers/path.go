package helpers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PostsDir is the output directory all post pages are nested under.
const PostsDir = "posts"

// PostPath derives the output path of a post from its title: the title is
// lower cased, every space becomes a hyphen, every question mark is dropped
// and ".html" is appended, nested under PostsDir.
// No other characters are touched, e.g. slashes and colons pass through.
func PostPath(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "?", "")
	return JoinPath(PostsDir, slug+".html")
}

// JoinPath joins two slash separated paths with exactly one slash between
// them. Unlike path.Join the result is not cleaned.
func JoinPath(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return strings.TrimSuffix(a, "/") + "/" + strings.TrimPrefix(b, "/")
}

// BaseName returns the last segment of the slash or OS separated path p.
func BaseName(p string) string {
	if i := strings.LastIndexAny(p, "/"+FilePathSeparator); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Ext returns the substring after the last "." in the base name of p,
// or "" if there is none.
func Ext(p string) string {
	base := BaseName(p)
	if i := strings.LastIndex(base, "."); i >= 0 {
		return base[i+1:]
	}
	return ""
}

// Filename returns the base name of p without its extension.
func Filename(p string) string {
	base := BaseName(p)
	if i := strings.LastIndex(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}

// OpenFileForWriting opens or creates the given file. If the target directory
// does not exist, it gets created.
func OpenFileForWriting(fs afero.Fs, filename string) (afero.File, error) {
	filename = filepath.Clean(filename)
	// Create will truncate if file already exists.
	// os.Create will create any new files with mode 0666 (before umask).
	f, err := fs.Create(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err = fs.MkdirAll(filepath.Dir(filename), 0777); err != nil { //  before umask
			return nil, err
		}
		f, err = fs.Create(filename)
	}

	return f, err
}
