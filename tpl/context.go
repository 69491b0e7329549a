package tpl

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMissingKey is returned when looking up a key an Object does not have,
	// or an index outside a Collection.
	ErrMissingKey = errors.New("missing key")

	// ErrWrongKind is returned when a lookup is made on the wrong kind of Context.
	ErrWrongKind = errors.New("wrong kind")
)

// Kind tells which of the three shapes a Context has.
type Kind int

const (
	KindText Kind = iota + 1
	KindObject
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindObject:
		return "object"
	case KindCollection:
		return "collection"
	default:
		return "invalid"
	}
}

// Context is the value templates are rendered against: a Text leaf, an
// Object of named fields or an ordered Collection.
//
// A Context is immutable. Constructors copy their arguments and accessors
// return copies, so a built Context can be shared between concurrent renders.
type Context struct {
	kind   Kind
	text   string
	fields map[string]Context
	items  []Context
}

// Text creates a leaf value.
func Text(s string) Context {
	return Context{kind: KindText, text: s}
}

// Object creates a record from fields.
func Object(fields map[string]Context) Context {
	m := make(map[string]Context, len(fields))
	for k, v := range fields {
		m[k] = v
	}
	return Context{kind: KindObject, fields: m}
}

// Collection creates an ordered list of items.
func Collection(items ...Context) Context {
	c := make([]Context, len(items))
	copy(c, items)
	return Context{kind: KindCollection, items: c}
}

// Kind returns the shape of c. The zero Context has no valid kind.
func (c Context) Kind() Kind {
	return c.kind
}

// IsZero reports whether c is the zero value.
func (c Context) IsZero() bool {
	return c.kind == 0
}

// LookupError describes a failed Get or Index.
type LookupError struct {
	// The key or index looked up.
	Key string

	// The kind of the Context the lookup was made on.
	Kind Kind

	Err error
}

func (e *LookupError) Error() string {
	if errors.Is(e.Err, ErrWrongKind) {
		return fmt.Sprintf("lookup %q: %s: value is a %s", e.Key, e.Err, e.Kind)
	}
	return fmt.Sprintf("lookup %q: %s", e.Key, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// AsText returns the value of a Text.
func (c Context) AsText() (string, error) {
	if c.kind != KindText {
		return "", &LookupError{Kind: c.kind, Err: ErrWrongKind}
	}
	return c.text, nil
}

// Get returns the field key of an Object.
func (c Context) Get(key string) (Context, error) {
	if c.kind != KindObject {
		return Context{}, &LookupError{Key: key, Kind: c.kind, Err: ErrWrongKind}
	}
	v, found := c.fields[key]
	if !found {
		return Context{}, &LookupError{Key: key, Kind: c.kind, Err: ErrMissingKey}
	}
	return v, nil
}

// Lookup follows path, a dot separated list of keys, from c.
func (c Context) Lookup(path string) (Context, error) {
	v := c
	for _, key := range strings.Split(path, ".") {
		var err error
		if v, err = v.Get(key); err != nil {
			return Context{}, err
		}
	}
	return v, nil
}

// Index returns the i'th item of a Collection.
func (c Context) Index(i int) (Context, error) {
	if c.kind != KindCollection {
		return Context{}, &LookupError{Key: fmt.Sprint(i), Kind: c.kind, Err: ErrWrongKind}
	}
	if i < 0 || i >= len(c.items) {
		return Context{}, &LookupError{Key: fmt.Sprint(i), Kind: c.kind, Err: ErrMissingKey}
	}
	return c.items[i], nil
}

// Len returns the number of fields of an Object or items of a Collection.
func (c Context) Len() int {
	switch c.kind {
	case KindObject:
		return len(c.fields)
	case KindCollection:
		return len(c.items)
	default:
		return 0
	}
}

// Keys returns the sorted field names of an Object.
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c.fields))
	for k := range c.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Items returns a copy of the items of a Collection.
func (c Context) Items() []Context {
	items := make([]Context, len(c.items))
	copy(items, c.items)
	return items
}

// With returns a copy of the Object c with key set to v.
func (c Context) With(key string, v Context) (Context, error) {
	if c.kind != KindObject {
		return Context{}, &LookupError{Key: key, Kind: c.kind, Err: ErrWrongKind}
	}
	m := make(map[string]Context, len(c.fields)+1)
	for k, vv := range c.fields {
		m[k] = vv
	}
	m[key] = v
	return Context{kind: KindObject, fields: m}, nil
}

// ToAny projects c onto plain Go values: a string, a map[string]any or
// a []any. The result is freshly allocated on every call, so a template
// engine may do what it wants with it.
func (c Context) ToAny() any {
	switch c.kind {
	case KindText:
		return c.text
	case KindObject:
		m := make(map[string]any, len(c.fields))
		for k, v := range c.fields {
			m[k] = v.ToAny()
		}
		return m
	case KindCollection:
		s := make([]any, len(c.items))
		for i, v := range c.items {
			s[i] = v.ToAny()
		}
		return s
	default:
		return nil
	}
}

func (c Context) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindObject:
		return fmt.Sprintf("object%v", c.Keys())
	case KindCollection:
		return fmt.Sprintf("collection[%d]", len(c.items))
	default:
		return "<nil>"
	}
}
