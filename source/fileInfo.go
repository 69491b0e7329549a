package source

import (
	"github.com/aiono/blogbuild/blogfs"
)

// File represents a source file.
type File interface {
	// Path gets the relative path including file name and extension.
	// The directory is relative to the site root.
	Path() string

	// Dir gets the name of the directory that contains this file.
	Dir() string

	// Ext gets the file extension, i.e "myblogpost.md" will return "md".
	Ext() string

	// LogicalName is filename and extension of the file.
	LogicalName() string

	// BaseFileName is a filename without extension.
	BaseFileName() string

	// Sibling returns the path of the file next to this one with the same
	// base name and the given extension.
	Sibling(ext string) string

	// ReadAll reads the file's contents.
	ReadAll() ([]byte, error)
}

// FileInfo describes a source file.
type FileInfo struct {
	sp *SourceSpec

	// Derived from filename
	ext string // Extension without any "."

	name     string
	dir      string
	relPath  string
	baseName string
}

// Path gets the relative path including file name and extension.
func (fi *FileInfo) Path() string { return fi.relPath }

// Dir gets the name of the directory that contains this file.
func (fi *FileInfo) Dir() string { return fi.dir }

// Ext returns a file's extension without the leading period (ie. "md").
func (fi *FileInfo) Ext() string { return fi.ext }

// LogicalName returns a file's name and extension (ie. "page.md").
func (fi *FileInfo) LogicalName() string { return fi.name }

// BaseFileName returns a file's name without extension (ie. "page").
func (fi *FileInfo) BaseFileName() string { return fi.baseName }

func (fi *FileInfo) Sibling(ext string) string {
	return fi.dir + "/" + fi.baseName + "." + ext
}

func (fi *FileInfo) ReadAll() ([]byte, error) {
	return blogfs.ReadFile(fi.sp.SourceFs, fi.relPath)
}

func (fi *FileInfo) String() string { return fi.relPath }
