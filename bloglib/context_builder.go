package bloglib

import (
	"github.com/aiono/blogbuild/resources/page"
	"github.com/aiono/blogbuild/tpl"
)

// Keys of the shared context.
const (
	keyComponents = "components"
	keyIndex      = "index"
	keyPosts      = "posts"
	keyPubDate    = "pubDate"
)

// BuildContext reads the content tree and returns the context shared by
// the home page, the blog index and the feed.
func (s *Site) BuildContext() (tpl.Context, error) {
	sc, err := s.captureContent()
	if err != nil {
		return tpl.Context{}, err
	}
	return s.buildContext(sc), nil
}

func (s *Site) buildContext(sc *siteContent) tpl.Context {
	posts := make([]tpl.Context, len(sc.posts))
	for i, p := range sc.posts {
		posts[i] = s.postListContext(p)
	}

	return tpl.Object(map[string]tpl.Context{
		keyComponents: sc.components,
		keyIndex:      tpl.Text(sc.index),
		keyPosts:      tpl.Collection(posts...),
	})
}

// postListContext is a post as seen from lists and the feed.
func (s *Site) postListContext(p *page.Post) tpl.Context {
	return tpl.Object(map[string]tpl.Context{
		"title":           tpl.Text(p.Title),
		"createdat":       tpl.Text(p.Date(s.Site.DateFormat)),
		"createdatRfc822": tpl.Text(p.DateRFC822()),
		"summary":         tpl.Text(p.Summary),
		"path":            tpl.Text(p.Path),
		"content":         tpl.Text(p.Content),
		"url":             tpl.Text(p.URL),
	})
}

// postPageContext is the context a post's own page is rendered against.
func (s *Site) postPageContext(p *page.Post, components tpl.Context) tpl.Context {
	return tpl.Object(map[string]tpl.Context{
		"title":       tpl.Text(p.Title),
		"createdat":   tpl.Text(p.Date(s.Site.DateFormat)),
		"content":     tpl.Text(p.Content),
		keyComponents: components,
	})
}
