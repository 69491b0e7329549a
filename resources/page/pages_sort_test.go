package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestPost(title, date string) *Post {
	d, err := time.Parse(CreatedAtLayout, date)
	if err != nil {
		panic(err)
	}
	return &Post{PostMetadata: PostMetadata{Title: title, CreatedAt: d}}
}

func titles(posts Posts) []string {
	var s []string
	for _, p := range posts {
		s = append(s, p.Title)
	}
	return s
}

func TestSortByDefault(t *testing.T) {
	posts := Posts{
		newTestPost("a", "2022-05-01"),
		newTestPost("b", "2024-01-01"),
		newTestPost("c", "2023-03-03"),
		newTestPost("d", "2024-01-01"),
	}

	SortByDefault(posts)
	require.Equal(t, []string{"b", "d", "c", "a"}, titles(posts))

	for i := 1; i < len(posts); i++ {
		require.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
	}
}

func TestPostDates(t *testing.T) {
	p := newTestPost("Hello", "2024-01-01")
	require.Equal(t, "2024-01-01", p.Date("2006-01-02"))
	require.Equal(t, "January 1, 2024", p.Date("January 2, 2006"))
	require.Equal(t, "Mon, 01 Jan 2024 00:00:00 +0000", p.DateRFC822())
}
