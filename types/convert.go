// Package types contains loose type conversions for config values.
package types

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ToStringSlicePreserveString is the same as ToStringSlicePreserveStringE,
// but it never fails.
func ToStringSlicePreserveString(v any) []string {
	vv, _ := ToStringSlicePreserveStringE(v)
	return vv
}

// ToStringSlicePreserveStringE converts v to a string slice. A single
// string becomes a one element slice, so ignoreFiles = "drafts/**" works
// the same as ignoreFiles = ["drafts/**"].
func ToStringSlicePreserveStringE(v any) ([]string, error) {
	switch vv := v.(type) {
	case nil:
		return nil, nil
	case string:
		if vv == "" {
			return nil, nil
		}
		return []string{vv}, nil
	case []string:
		return append([]string(nil), vv...), nil
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, fmt.Errorf("failed to convert %T to a string slice", v)
	}

	result := make([]string, rv.Len())
	for i := range result {
		s, err := cast.ToStringE(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		result[i] = s
	}
	return result, nil
}
