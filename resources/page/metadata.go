package page

import (
	"fmt"
	"time"

	"github.com/aiono/blogbuild/common/herrors"
	"github.com/aiono/blogbuild/common/maps"
	"github.com/aiono/blogbuild/parser/metadecoders"
	"github.com/spf13/cast"
)

const (
	fieldTitle     = "title"
	fieldCreatedAt = "created-at"

	// CreatedAtLayout is the layout of the created-at field, an ISO calendar date.
	CreatedAtLayout = "2006-01-02"
)

// PostMetadata holds the fields read from a post's sidecar document.
type PostMetadata struct {
	Title     string
	CreatedAt time.Time
}

// ParsePostMetadata validates and decodes a loosely typed document, as
// returned by metadecoders.Unmarshal, into a PostMetadata.
//
// Both title and created-at are required strings, title must not be
// empty; there are no defaults.
// Keys are matched exactly.
func ParsePostMetadata(doc any) (PostMetadata, error) {
	var meta PostMetadata

	m, ok := toFieldMap(doc)
	if !ok {
		return meta, &herrors.MetadataError{
			Err: fmt.Errorf("%w: metadata must be a mapping, got %T", herrors.ErrInvalidArgument, doc),
		}
	}

	title, err := stringField(m, fieldTitle)
	if err != nil {
		return meta, err
	}
	if title == "" {
		return meta, herrors.NewInvalidField(fieldTitle, "must not be empty")
	}

	createdAt, err := stringField(m, fieldCreatedAt)
	if err != nil {
		return meta, err
	}

	date, err := time.Parse(CreatedAtLayout, createdAt)
	if err != nil {
		return meta, &herrors.MetadataError{Field: fieldCreatedAt, Err: err}
	}

	meta.Title = title
	meta.CreatedAt = date

	return meta, nil
}

// DecodePostMetadata unmarshals data in the given format and parses the
// result with ParsePostMetadata.
func DecodePostMetadata(data []byte, f metadecoders.Format) (PostMetadata, error) {
	doc, err := metadecoders.Default.Unmarshal(data, f)
	if err != nil {
		return PostMetadata{}, &herrors.MetadataError{
			Err: fmt.Errorf("%w: %s", herrors.ErrInvalidArgument, err),
		}
	}
	return ParsePostMetadata(doc)
}

func toFieldMap(doc any) (map[string]any, bool) {
	switch m := doc.(type) {
	case map[string]any:
		return m, true
	case maps.Params:
		return m, true
	case map[any]any:
		mm := make(map[string]any, len(m))
		for k, v := range m {
			mm[cast.ToString(k)] = v
		}
		return mm, true
	default:
		return nil, false
	}
}

func stringField(m map[string]any, field string) (string, error) {
	v, found := m[field]
	if !found {
		return "", herrors.NewInvalidField(field, "missing required field")
	}
	s, ok := v.(string)
	if !ok {
		return "", herrors.NewInvalidField(field, "expected a string, got %T", v)
	}
	return s, nil
}
