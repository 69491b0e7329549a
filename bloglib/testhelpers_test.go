package bloglib

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/common/loggers"
	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/deps"
	"github.com/aiono/blogbuild/output"
	"github.com/bep/clocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testWorkingDir = "/site"

var testStart = time.Date(2022, 10, 1, 12, 0, 0, 0, time.UTC)

type siteFixture struct {
	t   testing.TB
	mm  afero.Fs
	cfg config.Provider
}

// newSiteFixture creates a complete content tree without any posts.
func newSiteFixture(t testing.TB) *siteFixture {
	f := &siteFixture{
		t:   t,
		mm:  afero.NewMemMapFs(),
		cfg: config.NewWithTestDefaults(),
	}
	f.cfg.Set("workingDir", testWorkingDir)
	require.NoError(t, f.mm.MkdirAll(filepath.Join(testWorkingDir, "pages", "posts"), 0755))

	f.withFiles(
		"pages/index.md", "# Home\n\nWelcome.\n",
		"components/header.html", "<header>blog</header>",
		"components/footer.html", "<footer>bye</footer>",
		"css/simple.css", "a{}\n",
		"css/custom.css", "b{}\n",
		"css/highlight.css", "c{}\n",
		"css/fonts/b.woff2", "font-b",
		"css/fonts/a.woff2", "font-a",
		"highlight/highlight.min.js", "hljs",
		"templates/index.html", `{{ index .components "header.html" }}{{ .index }}`,
		"templates/blog.html", "{{ range .posts }}{{ .title }}|{{ .createdat }}|{{ .path }}\n{{ end }}",
		"templates/post.html", `{{ index .components "header.html" }}<h1>{{ .title }}</h1><time>{{ .createdat }}</time>{{ .content }}{{ index .components "footer.html" }}`,
		"templates/feed.xml", `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><pubDate>{{ .pubDate }}</pubDate>{{ range .posts }}
<item><title>{{ .title }}</title><link>{{ .url }}</link><pubDate>{{ .createdatRfc822 }}</pubDate><description>{{ .summary }}</description></item>{{ end }}
</channel></rss>`,
	)

	return f
}

func (f *siteFixture) withFiles(filenameContent ...string) *siteFixture {
	f.t.Helper()
	for i := 0; i < len(filenameContent); i += 2 {
		filename := filepath.Join(testWorkingDir, filepath.FromSlash(filenameContent[i]))
		require.NoError(f.t, afero.WriteFile(f.mm, filename, []byte(filenameContent[i+1]), 0644))
	}
	return f
}

// withPost adds pages/posts/<name>.md and its sidecar.
func (f *siteFixture) withPost(name, title, createdAt, body string) *siteFixture {
	f.t.Helper()
	return f.withFiles(
		"pages/posts/"+name+".md", body,
		"pages/posts/"+name+".json", fmt.Sprintf(`{"title": %q, "created-at": %q}`, title, createdAt),
	)
}

func (f *siteFixture) remove(filename string) *siteFixture {
	f.t.Helper()
	require.NoError(f.t, f.mm.Remove(filepath.Join(testWorkingDir, filepath.FromSlash(filename))))
	return f
}

func (f *siteFixture) set(key string, value any) *siteFixture {
	f.cfg.Set(key, value)
	return f
}

func (f *siteFixture) newSite() (*Site, error) {
	fs, err := blogfs.NewFrom(f.mm, f.cfg)
	if err != nil {
		return nil, err
	}
	return NewSite(deps.DepsCfg{
		Fs:     fs,
		Cfg:    f.cfg,
		Logger: loggers.NewDiscard(),
		Clock:  clocks.Start(testStart),
	})
}

func (f *siteFixture) site() *Site {
	f.t.Helper()
	s, err := f.newSite()
	require.NoError(f.t, err)
	return s
}

func (f *siteFixture) assemble() output.Files {
	f.t.Helper()
	files, err := f.site().Assemble()
	require.NoError(f.t, err)
	return files
}

func (f *siteFixture) assembleErr() error {
	f.t.Helper()
	s, err := f.newSite()
	require.NoError(f.t, err)
	_, err = s.Assemble()
	require.Error(f.t, err)
	return err
}

func fileContent(t testing.TB, files output.Files, path string) string {
	t.Helper()
	f, found := files.Get(path)
	require.True(t, found, "no output file %q in %v", path, files.Paths())
	return string(f.Content)
}
