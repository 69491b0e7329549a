// Copyright 2016-present The Hugo Authors. All rights reserved.
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

package helpers

import (
	"strings"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/config"
)

// PathSpec holds methods that decides how paths in URLs and files should look like.
type PathSpec struct {
	// The site origin, without a trailing slash.
	BaseURL string

	// The file systems to use
	Fs *blogfs.Fs

	// The config provider to use
	Cfg config.Provider
}

// NewPathSpec creates a new PathSpec from the given filesystems and config.
func NewPathSpec(fs *blogfs.Fs, cfg config.Provider) *PathSpec {
	baseURL := cfg.GetString("baseURL")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	return &PathSpec{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Fs:      fs,
		Cfg:     cfg,
	}
}

// Permalink returns the absolute URL of the output path rel. The path is
// used as-is, no escaping is done.
func (p *PathSpec) Permalink(rel string) string {
	return p.PermalinkForBaseURL(rel, p.BaseURL)
}

// PermalinkForBaseURL creates a permalink from the given link and baseURL.
func (p *PathSpec) PermalinkForBaseURL(link, baseURL string) string {
	link = strings.TrimPrefix(link, "/")
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + link
}
