package maps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrepareParams(t *testing.T) {
	p := Params{
		"BaseURL": "https://example.org",
		"Markup": map[string]any{
			"Highlight": map[any]any{"Style": "monokai"},
		},
	}

	PrepareParams(p)

	require.Equal(t, "https://example.org", p["baseurl"])
	require.Equal(t, "monokai", p.Get("markup", "highlight", "style"))
	_, isParams := p["markup"].(Params)
	require.True(t, isParams)
}

func TestParamsSetAndDefaults(t *testing.T) {
	p := Params{"a": "1", "nested": Params{"x": "x1"}}

	p.Set(Params{"a": "2", "nested": Params{"y": "y1"}})
	require.Equal(t, "2", p["a"])
	require.Equal(t, "x1", p.Get("nested", "x"))
	require.Equal(t, "y1", p.Get("nested", "y"))

	p.SetDefaults(Params{"a": "3", "b": "b1", "nested": Params{"x": "x2", "z": "z1"}})
	require.Equal(t, "2", p["a"])
	require.Equal(t, "b1", p["b"])
	require.Equal(t, "x1", p.Get("nested", "x"))
	require.Equal(t, "z1", p.Get("nested", "z"))
}

func TestToParamsAndPrepare(t *testing.T) {
	p, ok := ToParamsAndPrepare(nil)
	require.True(t, ok)
	require.Empty(t, p)

	p, ok = ToParamsAndPrepare(map[string]string{"Key": "v"})
	require.True(t, ok)
	require.Equal(t, "v", p["key"])

	_, ok = ToParamsAndPrepare([]int{1})
	require.False(t, ok)
}
