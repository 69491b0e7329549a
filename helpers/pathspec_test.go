package helpers

import (
	"testing"

	"github.com/aiono/blogbuild/config"
	"github.com/stretchr/testify/require"
)

func TestPermalink(t *testing.T) {
	cfg := config.New()
	ps := NewPathSpec(nil, cfg)
	require.Equal(t, "https://blog.aiono.dev", ps.BaseURL)
	require.Equal(t, "https://blog.aiono.dev/posts/hello-world.html", ps.Permalink(PostPath("Hello World")))
	require.Equal(t, "https://blog.aiono.dev/posts/go:-a/b.html", ps.Permalink("/posts/go:-a/b.html"))

	cfg.Set("baseURL", "http://localhost:1313/")
	ps = NewPathSpec(nil, cfg)
	require.Equal(t, "http://localhost:1313/feed.xml", ps.Permalink("feed.xml"))
}
