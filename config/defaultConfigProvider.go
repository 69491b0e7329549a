package config

import (
	"strings"
	"sync"

	"github.com/aiono/blogbuild/common/maps"
	"github.com/aiono/blogbuild/types"
	"github.com/spf13/cast"
)

// New creates a Provider backed by an empty maps.Params.
func New() Provider {
	return &defaultConfigProvider{
		root: make(maps.Params),
	}
}

// NewWithTestDefaults creates a Provider holding DefaultSettings.
func NewWithTestDefaults() Provider {
	cfg := New()
	cfg.SetDefaults(DefaultSettings())
	return cfg
}

// NewFrom creates a Provider backed by params.
func NewFrom(params maps.Params) Provider {
	maps.PrepareParams(params)
	return &defaultConfigProvider{
		root: params,
	}
}

// defaultConfigProvider is a Provider backed by a map where all keys are lower case.
// All methods are thread safe.
type defaultConfigProvider struct {
	mu   sync.RWMutex
	root maps.Params

	keyCache sync.Map
}

func (c *defaultConfigProvider) Get(k string) any {
	if k == "" {
		return c.root
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	key, m := c.getNestedKeyAndMap(strings.ToLower(k), false)
	if m == nil {
		return nil
	}
	return m[key]
}

func (c *defaultConfigProvider) GetBool(k string) bool {
	return cast.ToBool(c.Get(k))
}

func (c *defaultConfigProvider) GetInt(k string) int {
	return cast.ToInt(c.Get(k))
}

func (c *defaultConfigProvider) GetString(k string) string {
	return cast.ToString(c.Get(k))
}

func (c *defaultConfigProvider) GetStringSlice(k string) []string {
	return types.ToStringSlicePreserveString(c.Get(k))
}

func (c *defaultConfigProvider) GetParams(k string) maps.Params {
	v := c.Get(k)
	if v == nil {
		return nil
	}
	p, _ := v.(maps.Params)
	return p
}

func (c *defaultConfigProvider) IsSet(k string) bool {
	var found bool
	c.mu.RLock()
	key, m := c.getNestedKeyAndMap(strings.ToLower(k), false)
	if m != nil {
		_, found = m[key]
	}
	c.mu.RUnlock()
	return found
}

func (c *defaultConfigProvider) Set(k string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k = strings.ToLower(k)

	if k == "" {
		if p, ok := maps.ToParamsAndPrepare(v); ok {
			// Set the values directly in root.
			c.root.Set(p)
		}
		return
	}

	switch vv := v.(type) {
	case map[string]any, map[any]any, map[string]string:
		v = maps.MustToParamsAndPrepare(vv)
	}

	key, m := c.getNestedKeyAndMap(k, true)
	if m == nil {
		return
	}

	if existing, found := m[key]; found {
		if p1, ok := existing.(maps.Params); ok {
			if p2, ok := v.(maps.Params); ok {
				p1.Set(p2)
				return
			}
		}
	}

	m[key] = v
}

// SetDefaults will set values from params if not already set.
func (c *defaultConfigProvider) SetDefaults(params maps.Params) {
	c.mu.Lock()
	defer c.mu.Unlock()
	maps.PrepareParams(params)
	c.root.SetDefaults(params)
}

func (c *defaultConfigProvider) getNestedKeyAndMap(key string, create bool) (string, maps.Params) {
	var parts []string
	v, ok := c.keyCache.Load(key)
	if ok {
		parts = v.([]string)
	} else {
		parts = strings.Split(key, ".")
		c.keyCache.Store(key, parts)
	}
	current := c.root
	for i := 0; i < len(parts)-1; i++ {
		next, found := current[parts[i]]
		if !found {
			if create {
				next = make(maps.Params)
				current[parts[i]] = next
			} else {
				return "", nil
			}
		}
		var ok bool
		current, ok = next.(maps.Params)
		if !ok {
			// E.g. a string, not a map that we can store values in.
			return "", nil
		}
	}
	return parts[len(parts)-1], current
}
