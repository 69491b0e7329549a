package glob

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

type globCache struct {
	sync.RWMutex
	cache map[string]globErr
}

type globErr struct {
	glob glob.Glob
	err  error
}

var defaultGlobCache = &globCache{cache: make(map[string]globErr)}

// GetGlob returns the compiled glob for pattern, using a cache.
// Patterns are matched against slash separated, lower cased paths.
func GetGlob(pattern string) (glob.Glob, error) {
	return defaultGlobCache.GetGlob(pattern)
}

func (gc *globCache) GetGlob(pattern string) (glob.Glob, error) {
	pattern = NormalizePath(pattern)

	gc.RLock()
	eg, found := gc.cache[pattern]
	gc.RUnlock()
	if found {
		return eg.glob, eg.err
	}

	g, err := glob.Compile(pattern, '/')

	gc.Lock()
	gc.cache[pattern] = globErr{glob: g, err: err}
	gc.Unlock()

	return g, err
}

// NormalizePath lower cases p and converts it to a slash separated path
// without a leading slash.
func NormalizePath(p string) string {
	return strings.Trim(strings.ToLower(filepath.ToSlash(filepath.Clean(p))), "/")
}

// FilenameFilter excludes files matching any of its patterns.
type FilenameFilter struct {
	exclusions []glob.Glob
}

// NewFilenameFilter creates a new FilenameFilter excluding files matching
// any of the given glob patterns.
func NewFilenameFilter(exclusions []string) (*FilenameFilter, error) {
	filter := &FilenameFilter{}
	for _, pattern := range exclusions {
		g, err := GetGlob(pattern)
		if err != nil {
			return nil, err
		}
		filter.exclusions = append(filter.exclusions, g)
	}
	return filter, nil
}

// Match returns whether filename should be included.
// A nil filter includes everything.
func (f *FilenameFilter) Match(filename string) bool {
	if f == nil {
		return true
	}
	filename = NormalizePath(filename)
	for _, g := range f.exclusions {
		if g.Match(filename) {
			return false
		}
	}
	return true
}
