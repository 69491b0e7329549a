package page

import (
	"time"

	"github.com/aiono/blogbuild/source"
)

// Post is a markdown file from the posts directory paired with its
// sidecar metadata. Its identity is the source file path.
type Post struct {
	File source.File

	PostMetadata

	// Rendered HTML of the markdown body.
	Content string

	// Plain text excerpt of Content.
	Summary string

	// Output path relative to the publish root, e.g. posts/hello-world.html.
	Path string

	// Absolute public URL.
	URL string
}

// Date formats the creation date with the given Go time layout.
func (p *Post) Date(layout string) string {
	return p.CreatedAt.Format(layout)
}

// DateRFC822 formats the creation date as an RFC-822 timestamp with a
// four digit year and numeric zone, as RSS readers expect.
func (p *Post) DateRFC822() string {
	return FormatRFC822(p.CreatedAt)
}

// FormatRFC822 formats t the way feed dates are written.
func FormatRFC822(t time.Time) string {
	return t.Format(time.RFC1123Z)
}
