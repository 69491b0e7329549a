package source

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aiono/blogbuild/blogfs"
)

// Filesystem represents the files of one source directory.
// Sub directories are not descended into.
type Filesystem struct {
	files        []File
	filesInit    sync.Once
	filesInitErr error

	// The directory, relative to the site root.
	Base string

	// If set, only files with one of these extensions are captured.
	Exts []string

	// If set, files hidden by the implicit rules (see IsHiddenFile) are
	// captured too. The ignoreFiles filter still applies.
	IncludeHidden bool

	*SourceSpec
}

// NewFilesystem creates a Filesystem for the directory base, keeping only
// files with the given extensions (all files if none given).
func (sp *SourceSpec) NewFilesystem(base string, exts ...string) *Filesystem {
	return &Filesystem{SourceSpec: sp, Base: base, Exts: exts}
}

// Files returns a slice of readable files, sorted by name.
func (f *Filesystem) Files() ([]File, error) {
	f.filesInit.Do(func() {
		err := f.captureFiles()
		if err != nil {
			f.filesInitErr = fmt.Errorf("capture files: %w", err)
		}
	})
	return f.files, f.filesInitErr
}

func (f *Filesystem) captureFiles() error {
	fis, err := blogfs.ReadDir(f.SourceFs, f.Base)
	if err != nil {
		return err
	}

	for _, fi := range fis {
		file := f.NewFileInfo(f.Base, fi.Name())
		if f.shouldRead(file) {
			f.files = append(f.files, file)
		}
	}

	return nil
}

func (f *Filesystem) shouldRead(file *FileInfo) bool {
	if f.IncludeHidden {
		if !f.inclusionFilter.Match(file.Path()) {
			return false
		}
	} else if f.IgnoreFile(file.Path()) {
		return false
	}
	if len(f.Exts) == 0 {
		return true
	}
	for _, ext := range f.Exts {
		if strings.EqualFold(ext, file.Ext()) {
			return true
		}
	}
	return false
}
