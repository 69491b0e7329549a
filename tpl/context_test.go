package tpl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextLookup(t *testing.T) {
	ctx := Object(map[string]Context{
		"index": Text("<p>home</p>"),
		"posts": Collection(
			Object(map[string]Context{"title": Text("first")}),
			Object(map[string]Context{"title": Text("second")}),
		),
	})

	require.Equal(t, KindObject, ctx.Kind())
	require.Equal(t, []string{"index", "posts"}, ctx.Keys())

	index, err := ctx.Get("index")
	require.NoError(t, err)
	s, err := index.AsText()
	require.NoError(t, err)
	require.Equal(t, "<p>home</p>", s)

	posts, err := ctx.Get("posts")
	require.NoError(t, err)
	require.Equal(t, 2, posts.Len())

	second, err := posts.Index(1)
	require.NoError(t, err)
	title, err := second.Lookup("title")
	require.NoError(t, err)
	require.Equal(t, "second", title.String())

	_, err = ctx.Get("components")
	require.True(t, errors.Is(err, ErrMissingKey))

	_, err = posts.Index(2)
	require.True(t, errors.Is(err, ErrMissingKey))

	_, err = index.Get("title")
	require.True(t, errors.Is(err, ErrWrongKind))
	var lerr *LookupError
	require.True(t, errors.As(err, &lerr))
	require.Equal(t, KindText, lerr.Kind)

	_, err = ctx.Index(0)
	require.True(t, errors.Is(err, ErrWrongKind))

	_, err = ctx.AsText()
	require.True(t, errors.Is(err, ErrWrongKind))

	_, err = ctx.Lookup("posts.title")
	require.True(t, errors.Is(err, ErrWrongKind))
}

func TestContextIsImmutable(t *testing.T) {
	fields := map[string]Context{"a": Text("1")}
	items := []Context{Text("x")}

	obj := Object(fields)
	coll := Collection(items...)

	fields["b"] = Text("2")
	items[0] = Text("y")

	require.Equal(t, 1, obj.Len())
	first, err := coll.Index(0)
	require.NoError(t, err)
	require.Equal(t, "x", first.String())

	with, err := obj.With("b", Text("3"))
	require.NoError(t, err)
	require.Equal(t, 2, with.Len())
	require.Equal(t, 1, obj.Len())

	replaced, err := obj.With("a", Text("replaced"))
	require.NoError(t, err)
	a, _ := replaced.Get("a")
	require.Equal(t, "replaced", a.String())
	a, _ = obj.Get("a")
	require.Equal(t, "1", a.String())

	coll.Items()[0] = Text("z")
	first, _ = coll.Index(0)
	require.Equal(t, "x", first.String())

	_, err = coll.With("a", Text("1"))
	require.True(t, errors.Is(err, ErrWrongKind))
}

func TestContextToAny(t *testing.T) {
	ctx := Object(map[string]Context{
		"title": Text("Hello"),
		"posts": Collection(Text("a"), Text("b")),
	})

	m := ctx.ToAny().(map[string]any)
	require.Equal(t, map[string]any{
		"title": "Hello",
		"posts": []any{"a", "b"},
	}, m)

	// Changing the projection must not leak into the Context or later projections.
	m["title"] = "changed"
	m["posts"].([]any)[0] = "changed"

	require.Equal(t, "Hello", ctx.ToAny().(map[string]any)["title"])
	require.Equal(t, []any{"a", "b"}, ctx.ToAny().(map[string]any)["posts"])

	require.Nil(t, Context{}.ToAny())
	require.True(t, Context{}.IsZero())
}
