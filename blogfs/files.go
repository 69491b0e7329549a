package blogfs

import (
	"errors"
	"os"
	"sort"

	"github.com/aiono/blogbuild/common/herrors"
	"github.com/spf13/afero"
)

// ReadFile reads the named file, wrapping any failure in a herrors.FileError.
func ReadFile(fs afero.Fs, filename string) ([]byte, error) {
	b, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, herrors.NewFileError("read", filename, err)
	}
	return b, nil
}

// ReadDir returns the regular files directly inside dirname, sorted by name.
// A missing directory is reported as a herrors.FileError wrapping
// os.ErrNotExist.
func ReadDir(fs afero.Fs, dirname string) ([]os.FileInfo, error) {
	fis, err := afero.ReadDir(fs, dirname)
	if err != nil {
		return nil, herrors.NewFileError("list", dirname, err)
	}

	files := fis[:0]
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		files = append(files, fi)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	return files, nil
}

// IsNotExist reports whether err is, or wraps, a file-not-found condition.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
