package page

import (
	"sort"
)

// Posts is a slice of posts. This is the most common list type.
type Posts []*Post

var (
	// ByCreatedDesc orders posts most recent first.
	ByCreatedDesc = func(p1, p2 *Post) bool {
		return p1.CreatedAt.After(p2.CreatedAt)
	}
)

// SortByDefault sorts posts by creation date, most recent first.
// Posts created on the same date keep their relative order.
func SortByDefault(posts Posts) {
	postBy(ByCreatedDesc).Sort(posts)
}

// postBy is a closure used in the Sort.Less method.
type postBy func(p1, p2 *Post) bool

// Sort stable sorts the posts given the receiver's sort order.
func (by postBy) Sort(posts Posts) {
	ps := &postSorter{
		posts: posts,
		by:    by, // The Sort method's receiver is the function (closure) that defines the sort order.
	}
	sort.Stable(ps)
}

// A postSorter implements the sort interface for Posts
type postSorter struct {
	posts Posts
	by    postBy
}

func (ps *postSorter) Len() int      { return len(ps.posts) }
func (ps *postSorter) Swap(i, j int) { ps.posts[i], ps.posts[j] = ps.posts[j], ps.posts[i] }

// Less is part of sort.Interface. It is implemented by calling the "by" closure in the sorter.
func (ps *postSorter) Less(i, j int) bool { return ps.by(ps.posts[i], ps.posts[j]) }
