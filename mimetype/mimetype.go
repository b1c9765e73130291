// Package mimetype infers the content type of arbitrary objects.
//
// Objects may declare their type directly by implementing MimeTyper. Types that cannot be
// changed can be registered instead.
package mimetype

import (
	"mime"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// Prefix is the prefix of all vendor mime types minted by this module.
const Prefix = "application/vnd.nextthought."

var (
	ErrNilType                 = errors.New("mimetype: nil reflect.Type provided")
	ErrConflictingRegistration = errors.New("mimetype: conflicting type registration")
)

// MimeTyper is implemented by objects that know their own content type.
type MimeTyper interface {
	MimeType() string
}

// Registry maps Go types to content types. Pointer types are registered and looked up by their
// element type.
type Registry struct {
	mu sync.RWMutex
	m  map[reflect.Type]string
}

func NewRegistry() *Registry {
	return &Registry{
		m: map[reflect.Type]string{},
	}
}

func normalize(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Validate returns an error if s is not a syntactically valid media type.
func Validate(s string) error {
	if _, _, err := mime.ParseMediaType(s); err != nil {
		return errors.Wrapf(err, "invalid mime type %q", s)
	}
	return nil
}

// Register associates t with mimeType. It is idempotent for the same pair.
func (r *Registry) Register(t reflect.Type, mimeType string) error {
	if t == nil {
		return ErrNilType
	}
	if err := Validate(mimeType); err != nil {
		return err
	}
	t = normalize(t)

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.m[t]; ok {
		if old == mimeType {
			return nil
		}
		return errors.Wrapf(ErrConflictingRegistration, "%v is already registered as %v", t, old)
	}
	r.m[t] = mimeType
	return nil
}

// Lookup returns the content type registered for t.
func (r *Registry) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ret, ok := r.m[normalize(t)]
	return ret, ok
}

// FromObject infers the content type of obj, returning an empty string if none is known.
// Strings never have a content type.
func (r *Registry) FromObject(obj any) string {
	switch obj := obj.(type) {
	case nil, string:
		return ""
	case MimeTyper:
		return obj.MimeType()
	}
	ret, _ := r.Lookup(reflect.TypeOf(obj))
	return ret
}

var defaultRegistry = NewRegistry()

// Register registers t with the default registry.
func Register(t reflect.Type, mimeType string) error {
	return defaultRegistry.Register(t, mimeType)
}

// FromObject infers the content type of obj using the default registry.
func FromObject(obj any) string {
	return defaultRegistry.FromObject(obj)
}
