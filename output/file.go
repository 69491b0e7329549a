package output

// File is one artifact of a build: the content and where to write it,
// relative to the publish root.
type File struct {
	Path    string
	Content []byte
}

// Files is the ordered result of a build.
type Files []File

// Paths returns the paths of all files, in order.
func (files Files) Paths() []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

// Size returns the total number of content bytes.
func (files Files) Size() int {
	var n int
	for _, f := range files {
		n += len(f.Content)
	}
	return n
}

// Get returns the file with the given path.
func (files Files) Get(path string) (File, bool) {
	for _, f := range files {
		if f.Path == path {
			return f, true
		}
	}
	return File{}, false
}
