package bloglib

import (
	"github.com/aiono/blogbuild/tpl"
)

// captureComponents reads the reusable snippets in the components dir into
// an Object keyed by file name, e.g. "header.html".
func (s *Site) captureComponents() (tpl.Context, error) {
	files, err := s.SourceSpec.NewFilesystem(componentsDir).Files()
	if err != nil {
		return tpl.Context{}, err
	}

	fields := make(map[string]tpl.Context, len(files))
	for _, f := range files {
		b, err := f.ReadAll()
		if err != nil {
			return tpl.Context{}, err
		}
		fields[f.LogicalName()] = tpl.Text(string(b))
	}

	s.Log.Debugf("captured %d components", len(fields))

	return tpl.Object(fields), nil
}
