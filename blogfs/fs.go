// Copyright 2019 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package blogfs provides the file systems used by the build.
package blogfs

import (
	"os"
	"path/filepath"

	"github.com/aiono/blogbuild/config"
	"github.com/bep/overlayfs"
	"github.com/spf13/afero"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// Fs holds the core filesystems used by the build.
type Fs struct {
	// Source is the read-only site source, rooted at the working dir.
	// When a theme dir is configured, the theme is overlaid beneath the
	// site so that files in the site win.
	Source afero.Fs

	// PublishDir is where the rendered output is written.
	// It's mounted inside publishDir (default /public).
	PublishDir afero.Fs

	// The absolute publish dir on the underlying filesystem.
	PublishDirPath string
}

// NewDefault creates a new Fs with the OS file system
// as source and destination file systems.
func NewDefault(cfg config.Provider) (*Fs, error) {
	return NewFrom(Os, cfg)
}

// NewFrom creates a new Fs based on the provided Afero Fs
// as source and destination file systems.
// Useful for testing.
func NewFrom(fs afero.Fs, cfg config.Provider) (*Fs, error) {
	return newFs(fs, fs, cfg)
}

func newFs(source, destination afero.Fs, cfg config.Provider) (*Fs, error) {
	workingDir := cfg.GetString("workingDir")
	publishDir := absPathify(workingDir, cfg.GetString("publishDir"))

	// Make sure we always have the /public folder ready to use.
	if err := destination.MkdirAll(publishDir, 0777); err != nil && !os.IsExist(err) {
		return nil, err
	}

	sourceFs := getWorkingDirFsReadOnly(source, workingDir)
	if themeDir := cfg.GetString("themeDir"); themeDir != "" {
		themeFs := getWorkingDirFsReadOnly(source, absPathify(workingDir, themeDir))
		sourceFs = overlayfs.New(overlayfs.Options{
			Fss: []afero.Fs{sourceFs, themeFs},
		})
	}

	return &Fs{
		Source:         sourceFs,
		PublishDir:     afero.NewBasePathFs(destination, publishDir),
		PublishDirPath: publishDir,
	}, nil
}

func getWorkingDirFsReadOnly(base afero.Fs, workingDir string) afero.Fs {
	if workingDir == "" {
		return afero.NewReadOnlyFs(base)
	}
	return afero.NewBasePathFs(afero.NewReadOnlyFs(base), workingDir)
}

// absPathify creates an absolute path if given a working dir and a relative path.
// If already absolute, the path is just cleaned.
func absPathify(workingDir, inPath string) string {
	if filepath.IsAbs(inPath) {
		return filepath.Clean(inPath)
	}
	return filepath.Join(workingDir, inPath)
}
