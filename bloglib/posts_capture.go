package bloglib

import (
	"errors"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/common/herrors"
	"github.com/aiono/blogbuild/helpers"
	"github.com/aiono/blogbuild/parser/metadecoders"
	"github.com/aiono/blogbuild/resources/page"
	"github.com/aiono/blogbuild/source"
	"github.com/aiono/blogbuild/tpl"
)

// siteContent is everything read from the content tree during one build.
// It is read-only once captured.
type siteContent struct {
	components tpl.Context
	index      string
	posts      page.Posts
}

func (s *Site) captureContent() (*siteContent, error) {
	s.Log.Process("Capture", "components, index page and posts")

	components, err := s.captureComponents()
	if err != nil {
		return nil, err
	}

	index, err := s.renderMarkdownFile(indexPage)
	if err != nil {
		return nil, err
	}

	posts, err := s.capturePosts()
	if err != nil {
		return nil, err
	}

	return &siteContent{
		components: components,
		index:      index,
		posts:      posts,
	}, nil
}

// capturePosts reads every markdown file in the posts dir together with its
// sidecar metadata, sorted most recent first.
func (s *Site) capturePosts() (page.Posts, error) {
	files, err := s.SourceSpec.NewFilesystem(postsDir, "md").Files()
	if err != nil {
		return nil, err
	}

	paths := newContentTree("posts")

	posts := make(page.Posts, 0, len(files))
	for _, f := range files {
		p, err := s.newPost(f)
		if err != nil {
			return nil, err
		}
		if err := paths.add(p.Path, f.Path()); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	page.SortByDefault(posts)

	s.stats.Posts.Store(int64(len(posts)))

	return posts, nil
}

func (s *Site) newPost(f source.File) (*page.Post, error) {
	sidecar := f.Sibling(postSidecarExt)

	b, err := blogfs.ReadFile(s.SourceSpec.SourceFs, sidecar)
	if err != nil {
		return nil, err
	}

	meta, err := page.DecodePostMetadata(b, metadecoders.JSON)
	if err != nil {
		var merr *herrors.MetadataError
		if errors.As(err, &merr) {
			return nil, merr.WithFilename(sidecar)
		}
		return nil, err
	}

	src, err := f.ReadAll()
	if err != nil {
		return nil, err
	}

	content, err := s.RenderMarkdown(f.Path(), src)
	if err != nil {
		return nil, err
	}

	path := helpers.PostPath(meta.Title)

	return &page.Post{
		File:         f,
		PostMetadata: meta,
		Content:      content,
		Summary:      helpers.ExtractSummary(content),
		Path:         path,
		URL:          s.Permalink(path),
	}, nil
}

func (s *Site) renderMarkdownFile(filename string) (string, error) {
	b, err := blogfs.ReadFile(s.SourceSpec.SourceFs, filename)
	if err != nil {
		return "", err
	}
	return s.RenderMarkdown(filename, b)
}
