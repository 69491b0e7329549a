package page

import (
	"errors"
	"testing"
	"time"

	"github.com/aiono/blogbuild/common/herrors"
	"github.com/aiono/blogbuild/parser/metadecoders"
	"github.com/stretchr/testify/require"
)

func TestParsePostMetadata(t *testing.T) {
	meta, err := ParsePostMetadata(map[string]any{"title": "Hello", "created-at": "2024-01-02"})
	require.NoError(t, err)
	require.Equal(t, "Hello", meta.Title)
	require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), meta.CreatedAt)

	meta, err = ParsePostMetadata(map[any]any{"created-at": "2023-12-31", "title": "YAML"})
	require.NoError(t, err)
	require.Equal(t, "YAML", meta.Title)
}

func TestParsePostMetadataInvalid(t *testing.T) {
	for _, test := range []struct {
		name  string
		doc   any
		field string
	}{
		{"wrong type", map[string]any{"title": 5}, "title"},
		{"empty title", map[string]any{"title": "", "created-at": "2024-01-01"}, "title"},
		{"missing field", map[string]any{}, "title"},
		{"missing date", map[string]any{"title": "Hello"}, "created-at"},
		{"date not a string", map[string]any{"title": "Hello", "created-at": 20240102}, "created-at"},
		{"wrong case", map[string]any{"Title": "Hello", "created-at": "2024-01-02"}, "title"},
		{"not a mapping", []any{1, 2}, ""},
		{"nil", nil, ""},
		{"string", `{"title": "Hello"}`, ""},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParsePostMetadata(test.doc)
			require.Error(t, err)
			require.True(t, errors.Is(err, herrors.ErrInvalidArgument), err.Error())

			var merr *herrors.MetadataError
			require.True(t, errors.As(err, &merr))
			require.Equal(t, test.field, merr.Field)
		})
	}
}

func TestParsePostMetadataBadDate(t *testing.T) {
	_, err := ParsePostMetadata(map[string]any{"title": "Hello", "created-at": "02/01/2024"})
	require.Error(t, err)
	require.False(t, errors.Is(err, herrors.ErrInvalidArgument))

	var perr *time.ParseError
	require.True(t, errors.As(err, &perr))
	require.Contains(t, err.Error(), "created-at")
}

func TestDecodePostMetadata(t *testing.T) {
	meta, err := DecodePostMetadata([]byte(`{"title":"Hello World","created-at":"2024-01-01"}`), metadecoders.JSON)
	require.NoError(t, err)
	require.Equal(t, "Hello World", meta.Title)

	_, err = DecodePostMetadata([]byte(`[1,2]`), metadecoders.JSON)
	require.True(t, errors.Is(err, herrors.ErrInvalidArgument))

	_, err = DecodePostMetadata([]byte(`{"title":`), metadecoders.JSON)
	require.True(t, errors.Is(err, herrors.ErrInvalidArgument))
}
