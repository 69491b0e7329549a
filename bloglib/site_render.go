package bloglib

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/helpers"
	"github.com/aiono/blogbuild/output"
	"github.com/aiono/blogbuild/resources/page"
	"github.com/aiono/blogbuild/tpl"
	"github.com/aiono/blogbuild/tpl/tplimpl"
	"golang.org/x/sync/errgroup"
)

// The stylesheets concatenated into style.css. Later files override
// earlier ones.
var stylesheets = []string{"simple.css", "custom.css", "highlight.css"}

// Assemble builds the context, renders every template and collects the
// static assets. Files are returned in a fixed order: index.html,
// blog.html, style.css, highlight.js, feed.xml, the fonts, then the posts.
// Any failure aborts the build.
func (s *Site) Assemble() (output.Files, error) {
	s.Log.Process("Assemble", "start")

	sc, err := s.captureContent()
	if err != nil {
		return nil, err
	}

	shared := s.buildContext(sc)

	outputs := newContentTree("outputs")
	var files output.Files
	add := func(path, source string, content []byte) error {
		if err := outputs.add(path, source); err != nil {
			return err
		}
		files = append(files, output.File{Path: path, Content: content})
		return nil
	}

	for _, name := range []string{"index.html", "blog.html"} {
		s.Log.Process("Assemble", "render "+name)
		b, err := s.renderTemplate(name, shared)
		if err != nil {
			return nil, err
		}
		if err := add(name, templatePath(name), b); err != nil {
			return nil, err
		}
	}

	css, err := s.bundleStylesheets()
	if err != nil {
		return nil, err
	}
	if err := add("style.css", cssDir, css); err != nil {
		return nil, err
	}

	js, err := blogfs.ReadFile(s.SourceSpec.SourceFs, highlightScript)
	if err != nil {
		return nil, err
	}
	if err := add("highlight.js", highlightScript, js); err != nil {
		return nil, err
	}

	feed, err := s.renderFeed(shared)
	if err != nil {
		return nil, err
	}
	if err := add("feed.xml", templatePath("feed.xml"), feed); err != nil {
		return nil, err
	}

	fontsFs := s.SourceSpec.NewFilesystem(fontsDir)
	fontsFs.IncludeHidden = true
	fonts, err := fontsFs.Files()
	if err != nil {
		return nil, err
	}
	for _, f := range fonts {
		b, err := f.ReadAll()
		if err != nil {
			return nil, err
		}
		if err := add(helpers.JoinPath("fonts", f.LogicalName()), f.Path(), b); err != nil {
			return nil, err
		}
	}

	pages, err := s.renderPosts(sc)
	if err != nil {
		return nil, err
	}
	for i, p := range sc.posts {
		if err := add(p.Path, p.File.Path(), pages[i]); err != nil {
			return nil, err
		}
	}

	s.Log.Process("Assemble", fmt.Sprintf("done, %d files", len(files)))

	return files, nil
}

// renderPosts renders every post's page. Posts are rendered concurrently;
// the result for sc.posts[i] is stored at index i.
func (s *Site) renderPosts(sc *siteContent) ([][]byte, error) {
	src, err := s.readTemplate("post.html")
	if err != nil {
		return nil, err
	}

	results := make([][]byte, len(sc.posts))

	numWorkers := config.GetNumWorkerMultiplier()
	if numWorkers > len(sc.posts) {
		numWorkers = len(sc.posts)
	}

	g, ctx := errgroup.WithContext(context.Background())
	indexes := make(chan int, numWorkers*2)

	for i := 0; i < numWorkers; i++ {
		g.Go(func() error {
			for i := range indexes {
				p := sc.posts[i]
				out, err := s.Tmpl().Render("post.html", src, s.postPageContext(p, sc.components))
				if err != nil {
					return fmt.Errorf("post %q: %w", p.File.Path(), err)
				}
				results[i] = []byte(out)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(indexes)
		for i := range sc.posts {
			select {
			case <-ctx.Done():
				return nil
			case indexes <- i:
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *Site) renderFeed(shared tpl.Context) ([]byte, error) {
	pubDate := page.FormatRFC822(s.Clock.Now().UTC())

	ctx, err := shared.With(keyPubDate, tpl.Text(pubDate))
	if err != nil {
		return nil, err
	}

	b, err := s.renderTemplate("feed.xml", ctx)
	if err != nil {
		return nil, err
	}

	if s.Site.ValidateFeed {
		if err := validateFeed(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// bundleStylesheets concatenates the stylesheets in order.
func (s *Site) bundleStylesheets() ([]byte, error) {
	var buf bytes.Buffer
	for _, name := range stylesheets {
		b, err := blogfs.ReadFile(s.SourceSpec.SourceFs, helpers.JoinPath(cssDir, name))
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

func (s *Site) renderTemplate(name string, ctx tpl.Context) ([]byte, error) {
	src, err := s.readTemplate(name)
	if err != nil {
		return nil, err
	}
	out, err := s.Tmpl().Render(name, src, ctx)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func (s *Site) readTemplate(name string) (string, error) {
	b, err := blogfs.ReadFile(s.SourceSpec.SourceFs, templatePath(name))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func templatePath(name string) string {
	return helpers.JoinPath(tplimpl.TemplatesDir, name)
}
