package metadecoders

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"
)

// Decoder provides some configuration options for the decoders.
type Decoder struct {
	// Whether YAML documents with map[any]any values are normalised to
	// map[string]any.
	NormaliseYAML bool
}

// Default is a Decoder in its default configuration.
var Default = Decoder{
	NormaliseYAML: true,
}

// Unmarshal will unmarshall data in format f into an any value. The top
// level value is returned as-is, so a JSON array stays a []any.
func (d Decoder) Unmarshal(data []byte, f Format) (any, error) {
	var v any
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, &v)
	case TOML:
		var m map[string]any
		err = toml.Unmarshal(data, &m)
		v = m
	case YAML:
		err = yaml.Unmarshal(data, &v)
		if err == nil && d.NormaliseYAML {
			v = normaliseYAML(v)
		}
	default:
		return nil, fmt.Errorf("unmarshal of format %q is not supported", f)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", f, err)
	}

	return v, nil
}

// UnmarshalToMap will unmarshall data in format f into a new map. This is
// what's needed for configuration files.
func (d Decoder) UnmarshalToMap(data []byte, f Format) (map[string]any, error) {
	v, err := d.Unmarshal(data, f)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s document is a %T, not a map", f, v)
	}
	return m, nil
}

// UnmarshalFileToMap is the same as UnmarshalToMap, but reads the data from
// the given filename.
func (d Decoder) UnmarshalFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	format := FormatFromString(filename)
	if format == "" {
		return nil, fmt.Errorf("%q is not a valid configuration format", filename)
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return d.UnmarshalToMap(data, format)
}

func normaliseYAML(v any) any {
	switch vv := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(vv))
		for k, e := range vv {
			m[cast.ToString(k)] = normaliseYAML(e)
		}
		return m
	case map[string]any:
		for k, e := range vv {
			vv[k] = normaliseYAML(e)
		}
		return vv
	case []any:
		for i, e := range vv {
			vv[i] = normaliseYAML(e)
		}
		return vv
	default:
		return v
	}
}
