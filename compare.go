package links

import (
	"reflect"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Ordering is the result of comparing two links.
type Ordering int

const (
	OrderLess    Ordering = -1
	OrderEqual   Ordering = 0
	OrderGreater Ordering = 1

	// Incomparable is returned when the operands have no defined order, for example because one
	// of them is not a link or their targets cannot be ordered.
	Incomparable Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case OrderLess:
		return "less"
	case OrderEqual:
		return "equal"
	case OrderGreater:
		return "greater"
	}
	return "incomparable"
}

func asLink(v any) *Link {
	l, ok := v.(Linker)
	if !ok || isNil(l) {
		return nil
	}
	return l.AsLink()
}

// Equaler may be implemented by targets that define their own equality.
type Equaler interface {
	Equal(other any) bool
}

// targetsEqual never panics. A comparable type may still hold uncomparable values in its
// interface fields, in which case the targets are not equal.
func targetsEqual(a, b any) (eq bool) {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func elementsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal reports whether other is a link with the same relation, target, and elements. Other
// properties such as the method or title are not considered. Values that are not links are
// never equal.
func (l *Link) Equal(other any) bool {
	o := asLink(other)
	if o == nil {
		return false
	}
	if l == o {
		return true
	}
	return l.rel == o.rel && targetsEqual(l.target, o.target) && elementsEqual(l.elements, o.elements)
}

func compareTargets(a, b any) Ordering {
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return Ordering(strings.Compare(sa, sb))
		}
	}
	if targetsEqual(a, b) {
		return OrderEqual
	}
	return Incomparable
}

func compareElements(a, b []string) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return Ordering(c)
		}
	}
	switch {
	case len(a) < len(b):
		return OrderLess
	case len(a) > len(b):
		return OrderGreater
	}
	return OrderEqual
}

// Compare orders links lexicographically by relation, target, and elements.
func (l *Link) Compare(other any) Ordering {
	o := asLink(other)
	if o == nil {
		return Incomparable
	}
	if c := strings.Compare(l.rel, o.rel); c != 0 {
		return Ordering(c)
	}
	if c := compareTargets(l.target, o.target); c != OrderEqual {
		return c
	}
	return compareElements(l.elements, o.elements)
}

// Sort sorts links in place using Compare. The sort is stable, but incomparable pairs are
// treated as unordered, so the result is only fully ordered when every pair of links is
// comparable.
func Sort(links []*Link) {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Compare(links[j]) == OrderLess
	})
}

// Hash returns a hash consistent with Equal. Only string targets contribute to the hash so
// that hashing never traverses a target object.
func (l *Link) Hash() uint64 {
	d := xxhash.New()
	d.WriteString(l.rel)
	d.WriteString("\x00")
	if s, ok := l.target.(string); ok {
		d.WriteString(s)
	}
	for _, e := range l.elements {
		d.WriteString("\x00")
		d.WriteString(e)
	}
	return d.Sum64()
}
