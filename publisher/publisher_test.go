package publisher

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/minifiers"
	"github.com/aiono/blogbuild/output"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T) (DestinationPublisher, afero.Fs) {
	min, err := minifiers.New(output.DefaultFormats, config.New())
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	return NewDestinationPublisher(fs, min), fs
}

func TestPublish(t *testing.T) {
	p, fs := newTestPublisher(t)

	files := output.Files{
		{Path: "index.html", Content: []byte("<p>  Hello   World  </p>")},
		{Path: "posts/hello-world.html", Content: []byte("<p>post</p>")},
		{Path: "fonts/inter.woff2", Content: []byte{0, ' ', ' ', 1}},
	}

	for _, f := range files {
		require.NoError(t, p.Publish(DescriptorFor(f, output.DefaultFormats, false)))
	}

	b, err := afero.ReadFile(fs, "index.html")
	require.NoError(t, err)
	require.Equal(t, "<p>  Hello   World  </p>", string(b))

	b, err = afero.ReadFile(fs, "posts/hello-world.html")
	require.NoError(t, err)
	require.Equal(t, "<p>post</p>", string(b))

	require.NoError(t, p.Publish(DescriptorFor(files[0], output.DefaultFormats, true)))
	b, err = afero.ReadFile(fs, "index.html")
	require.NoError(t, err)
	require.Equal(t, "<p>Hello World</p>", string(b))

	require.NoError(t, p.Publish(DescriptorFor(files[2], output.DefaultFormats, true)))
	b, err = afero.ReadFile(fs, "fonts/inter.woff2")
	require.NoError(t, err)
	require.Equal(t, []byte{0, ' ', ' ', 1}, b)

	require.Error(t, p.Publish(Descriptor{Src: strings.NewReader("")}))
}

func TestPublishConcurrentSamePath(t *testing.T) {
	p, fs := newTestPublisher(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			content := strings.Repeat(fmt.Sprint(i%10), 100)
			assert.NoError(t, p.Publish(DescriptorFor(output.File{Path: "same.html", Content: []byte(content)}, output.DefaultFormats, false)))
		}(i)
	}
	wg.Wait()

	b, err := afero.ReadFile(fs, "same.html")
	require.NoError(t, err)
	require.Len(t, b, 100)
	require.Equal(t, strings.Repeat(string(b[0]), 100), string(b))
}
