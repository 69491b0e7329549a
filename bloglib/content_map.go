package bloglib

import (
	"github.com/aiono/blogbuild/common/herrors"
	"github.com/armon/go-radix"
)

// contentTree maps output paths to the source that produced them.
type contentTree struct {
	Name string
	*radix.Tree
}

type contentNode struct {
	// The output path. Unix slashes. No leading slash.
	path string

	// The source this output was produced from, e.g. a post's markdown file.
	source string
}

func newContentTree(name string) *contentTree {
	return &contentTree{Name: name, Tree: radix.New()}
}

// add registers path as produced by source. Two sources producing the same
// path is an error.
func (c *contentTree) add(path, source string) error {
	if v, found := c.Get(path); found {
		n := v.(*contentNode)
		return &herrors.CollisionError{Path: path, First: n.source, Second: source}
	}
	c.Insert(path, &contentNode{path: path, source: source})
	return nil
}
