// Package traversal computes resource paths for objects that live in a location hierarchy.
//
// An object is locatable if it implements Location (a name plus a parent) and its parent chain
// ends at a Root, or at an object that already knows its own path (Pather).
package traversal

import (
	"net/url"
	"reflect"
	"strings"
)

// The maximum number of parents followed before a chain is considered cyclic.
const maxDepth = 1024

// Location is implemented by objects that have a name within a containing parent.
type Location interface {
	LocationName() string

	// LocationParent returns the containing object, or nil if the object is detached.
	LocationParent() any
}

// Root marks the top of a location hierarchy. Its path is "/".
type Root interface {
	TraversalRoot()
}

// Pather is implemented by objects that know their own resource path, such as sites mounted
// below the root.
type Pather interface {
	ResourcePath() (string, error)
}

// TraversablePather is implemented by objects that have an identifier but should nonetheless
// be linked to by resource path.
type TraversablePather interface {
	ShouldHaveTraversablePath() bool
}

// HasTraversablePath reports whether obj declares that it should be linked to by path.
func HasTraversablePath(obj any) bool {
	if p, ok := obj.(TraversablePather); ok {
		return p.ShouldHaveTraversablePath()
	}
	return false
}

// IsValidResourcePath reports whether s can be used verbatim as an href.
func IsValidResourcePath(s string) bool {
	return strings.HasPrefix(s, "/") || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// visit records v in seen and reports whether it was already there. Values that cannot be map
// keys are never recorded.
func visit(seen map[any]struct{}, v any) (visited bool) {
	if !reflect.TypeOf(v).Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			visited = false
		}
	}()
	if _, ok := seen[v]; ok {
		return true
	}
	seen[v] = struct{}{}
	return false
}

// ResourcePath returns the canonical path of obj. It fails with a *TypeError if obj cannot be
// located at all and with a *LocationError if its parent chain is broken.
func ResourcePath(obj any) (string, error) {
	if isNil(obj) {
		return "", &TypeError{Object: obj}
	}

	var names []string
	seen := map[any]struct{}{}
	prefix := ""
	cur := obj
	for depth := 0; ; depth++ {
		if depth > maxDepth {
			return "", &LocationError{Object: obj, Reason: "parent chain too deep"}
		}
		if visit(seen, cur) {
			return "", &LocationError{Object: obj, Reason: "cyclic parent chain"}
		}

		if p, ok := cur.(Pather); ok {
			path, err := p.ResourcePath()
			if err != nil {
				return "", err
			}
			prefix = path
			break
		}
		if _, ok := cur.(Root); ok {
			break
		}
		loc, ok := cur.(Location)
		if !ok {
			if depth == 0 {
				return "", &TypeError{Object: obj}
			}
			return "", &LocationError{Object: obj, Reason: "parent is not a location"}
		}
		names = append(names, url.PathEscape(loc.LocationName()))
		parent := loc.LocationParent()
		if isNil(parent) {
			return "", &LocationError{Object: obj, Reason: "not enough context"}
		}
		cur = parent
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return join(prefix, names), nil
}

func join(prefix string, names []string) string {
	if len(names) == 0 {
		if prefix == "" {
			return "/"
		}
		return prefix
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.Join(names, "/")
}

// Path is an object located at a known resource path.
type Path string

func (p Path) ResourcePath() (string, error) {
	if !IsValidResourcePath(string(p)) {
		return "", &LocationError{Object: p, Reason: "invalid path " + string(p)}
	}
	return string(p), nil
}
