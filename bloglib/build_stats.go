package bloglib

import (
	"fmt"

	"go.uber.org/atomic"
)

// BuildStats counts what a build produced.
type BuildStats struct {
	Posts *atomic.Int64
	Files *atomic.Int64
	Bytes *atomic.Int64
}

func newBuildStats() *BuildStats {
	return &BuildStats{
		Posts: atomic.NewInt64(0),
		Files: atomic.NewInt64(0),
		Bytes: atomic.NewInt64(0),
	}
}

func (s *BuildStats) String() string {
	return fmt.Sprintf("%d posts, %d files, %d bytes", s.Posts.Load(), s.Files.Load(), s.Bytes.Load())
}
