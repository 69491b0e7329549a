package tplimpl

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/aiono/blogbuild/blogfs"
	"github.com/aiono/blogbuild/common/loggers"
	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/deps"
	"github.com/aiono/blogbuild/tpl"
	"github.com/bep/clocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, engine string, files ...string) tpl.Renderer {
	t.Helper()

	mm := afero.NewMemMapFs()
	for i := 0; i < len(files); i += 2 {
		require.NoError(t, afero.WriteFile(mm, filepath.Join("/site", files[i]), []byte(files[i+1]), 0644))
	}

	cfg := config.NewWithTestDefaults()
	cfg.Set("workingDir", "/site")
	cfg.Set("templateEngine", engine)

	fs, err := blogfs.NewFrom(mm, cfg)
	require.NoError(t, err)

	d, err := deps.New(deps.DepsCfg{
		Fs:               fs,
		Cfg:              cfg,
		Logger:           loggers.NewDiscard(),
		Clock:            clocks.Start(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		TemplateProvider: DefaultTemplateProvider,
	})
	require.NoError(t, err)
	require.NoError(t, d.LoadResources())

	return d.Tmpl()
}

func newTestContext() tpl.Context {
	return tpl.Object(map[string]tpl.Context{
		"index": tpl.Text("<p>Welcome home.</p>"),
		"components": tpl.Object(map[string]tpl.Context{
			"header":      tpl.Text("<header>blog</header>"),
			"header.html": tpl.Text("<header>file</header>"),
		}),
		"posts": tpl.Collection(
			tpl.Object(map[string]tpl.Context{"title": tpl.Text("Second"), "content": tpl.Text("<p>B. C.</p>")}),
			tpl.Object(map[string]tpl.Context{"title": tpl.Text("First"), "content": tpl.Text("<p>A.</p>")}),
		),
	})
}

func TestGoEngine(t *testing.T) {
	r := newTestRenderer(t, tpl.EngineGo)
	ctx := newTestContext()

	s, err := r.Render("index.html", `{{ .components.header }}{{ .index }}{{ range .posts }}[{{ .title }}]{{ end }}`, ctx)
	require.NoError(t, err)
	require.Equal(t, "<header>blog</header><p>Welcome home.</p>[Second][First]", s)

	s, err = r.Render("post.html", `{{ index .components "header.html" }}`, ctx)
	require.NoError(t, err)
	require.Equal(t, "<header>file</header>", s)

	s, err = r.Render("funcs", `{{ title "the lord of the rings" }}|{{ removeAccents "Été" }}|{{ plainText .index }}|{{ summary "A. B. C. D." }}|{{ (now).Year }}`, ctx)
	require.NoError(t, err)
	require.Equal(t, "The Lord of the Rings|Ete|Welcome home.|A. B. C.|2024", s)

	s, err = r.Render("highlight", `{{ highlight "x := 1" "go" }}`, ctx)
	require.NoError(t, err)
	require.Contains(t, s, "<pre")
}

func TestGoEngineErrors(t *testing.T) {
	r := newTestRenderer(t, tpl.EngineGo)
	ctx := newTestContext()

	for _, test := range []struct {
		name string
		src  string
	}{
		{"missing key", `{{ .nope }}`},
		{"missing component", `{{ .components.footer }}`},
		{"wrong shape", `{{ .index.title }}`},
		{"syntax", `{{ .index `},
		{"unknown func", `{{ nope .index }}`},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := r.Render("blog.html", test.src, ctx)
			require.Error(t, err)

			var rerr *tpl.RenderError
			require.True(t, errors.As(err, &rerr))
			require.Equal(t, "blog.html", rerr.Name)
			require.Equal(t, tpl.EngineGo, rerr.Engine)
		})
	}
}

func TestGoEngineNoCrossContamination(t *testing.T) {
	r := newTestRenderer(t, tpl.EngineGo)
	ctx := newTestContext()

	b := `{{ range .posts }}{{ .title }};{{ end }}`

	before, err := r.Render("b", b, ctx)
	require.NoError(t, err)

	_, err = r.Render("a", `{{ $p := index .posts 0 }}{{ $p.title }}{{ slice .posts 1 }}`, ctx)
	require.NoError(t, err)

	after, err := r.Render("b", b, ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)

	// Same name, new source.
	s, err := r.Render("b", `{{ len .posts }}`, ctx)
	require.NoError(t, err)
	require.Equal(t, "2", s)
}

func TestDjangoEngine(t *testing.T) {
	r := newTestRenderer(t, tpl.EngineDjango)
	ctx := newTestContext()

	s, err := r.Render("blog.html", `{{ components.header|safe }}{% for post in posts %}[{{ post.title }}]{% endfor %}`, ctx)
	require.NoError(t, err)
	require.Equal(t, "<header>blog</header>[Second][First]", s)

	s, err = r.Render("index.html", `{{ index }}`, ctx)
	require.NoError(t, err)
	require.Equal(t, "&lt;p&gt;Welcome home.&lt;/p&gt;", s)

	s, err = r.Render("feed.xml", `{{ index|plaintext }}|{{ "A. B. C. D."|summary }}`, ctx)
	require.NoError(t, err)
	require.Equal(t, "Welcome home.|A. B. C.", s)

	s, err = r.Render("index.html", `{{ components|get:"header.html"|safe }}`, ctx)
	require.NoError(t, err)
	require.Equal(t, "<header>file</header>", s)

	_, err = r.Render("post.html", `{% for post in posts %}`, ctx)
	var rerr *tpl.RenderError
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, "post.html", rerr.Name)
	require.Equal(t, tpl.EngineDjango, rerr.Engine)
}

func TestDjangoEngineNonObjectContext(t *testing.T) {
	r := newTestRenderer(t, tpl.EngineDjango)

	for _, ctx := range []tpl.Context{
		tpl.Text("hello"),
		tpl.Collection(tpl.Text("a")),
	} {
		_, err := r.Render("index.html", `{{ index }}`, ctx)
		require.Error(t, err)

		var rerr *tpl.RenderError
		require.True(t, errors.As(err, &rerr))
		require.Equal(t, tpl.EngineDjango, rerr.Engine)
		require.True(t, errors.Is(err, tpl.ErrWrongKind))
	}
}

func TestAferoLoader(t *testing.T) {
	mm := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mm, "templates/partial.html", []byte("partial"), 0644))

	l := &aferoLoader{fs: mm, dir: "templates"}
	require.Equal(t, filepath.FromSlash("templates/partial.html"), l.Abs("", "partial.html"))
	require.Equal(t, "/abs/partial.html", l.Abs("", "/abs/partial.html"))

	rd, err := l.Get(l.Abs("", "partial.html"))
	require.NoError(t, err)
	b, err := io.ReadAll(rd)
	require.NoError(t, err)
	require.Equal(t, "partial", string(b))

	_, err = l.Get("templates/missing.html")
	require.True(t, blogfs.IsNotExist(err))
}
