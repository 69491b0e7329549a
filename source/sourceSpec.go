package source

import (
	"path/filepath"
	"strings"

	"github.com/aiono/blogbuild/blogfs/glob"
	"github.com/aiono/blogbuild/helpers"
	"github.com/spf13/afero"
)

// SourceSpec abstracts how source files are found.
type SourceSpec struct {
	SourceFs afero.Fs

	inclusionFilter *glob.FilenameFilter
}

// NewSourceSpec initializes SourceSpec using the given filesystem and an
// optional filter for user configured ignores.
func NewSourceSpec(fs afero.Fs, inclusionFilter *glob.FilenameFilter) *SourceSpec {
	return &SourceSpec{
		SourceFs:        fs,
		inclusionFilter: inclusionFilter,
	}
}

// IgnoreFile returns whether a given file should be ignored, either by the
// implicit rules (see IsHiddenFile) or by the user configured filter.
func (s *SourceSpec) IgnoreFile(filename string) bool {
	if filename == "" {
		return true
	}
	return IsHiddenFile(filename) || !s.inclusionFilter.Match(filename)
}

// IsHiddenFile reports whether filename is a dotfile, an editor lock file
// (#name) or a backup (name~).
func IsHiddenFile(filename string) bool {
	base := helpers.BaseName(filename)

	if len(base) > 0 {
		first := base[0]
		last := base[len(base)-1]
		return first == '.' ||
			first == '#' ||
			last == '~'
	}

	return false
}

// NewFileInfo creates a FileInfo for the file named name in the source
// directory dir.
func (s *SourceSpec) NewFileInfo(dir, name string) *FileInfo {
	relPath := filepath.ToSlash(filepath.Join(dir, name))
	return &FileInfo{
		sp:       s,
		relPath:  relPath,
		dir:      filepath.ToSlash(dir),
		name:     name,
		ext:      strings.ToLower(helpers.Ext(name)),
		baseName: helpers.Filename(name),
	}
}
