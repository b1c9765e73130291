// Package links implements hyperlinks between objects and their rendering into externalized
// representations.
//
// A Link names a relationship (its rel) to a target. Targets may be objects that can be located
// by resource path, literal paths or URLs, or NTIID strings. Links are rendered at runtime by a
// Renderer and are never persisted.
package links

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"

	"github.com/nextthought/links/mimetype"
)

// Common relation types.
const (
	RelAlternate = "alternate"
	RelSelf      = "self"
	RelEdit      = "edit"
	RelEnclosure = "enclosure"
)

// MimeType is the content kind of links themselves.
const MimeType = mimetype.Prefix + "link"

// Linker is implemented by Link and every type that embeds one.
type Linker interface {
	AsLink() *Link
}

// Param is a single query string parameter.
type Param struct {
	Key   string
	Value string
}

// Link is a relationship between an object and some target. Links are immutable once
// constructed.
type Link struct {
	rel                    string
	target                 any
	elements               []string
	targetMimeType         string
	method                 string
	title                  string
	params                 []Param
	ignoreTargetProperties bool
	hrefOnly               bool
	creator                any
}

// Option configures optional properties of a link.
type Option func(*Link)

// WithElements adds path segments that are appended after the target when the href is
// generated. This is useful for view names and namespace traversals.
func WithElements(elements ...string) Option {
	return func(l *Link) {
		l.elements = append(l.elements, elements...)
	}
}

// WithTargetMimeType sets the mime type that can be expected after following the link.
func WithTargetMimeType(mimeType string) Option {
	return func(l *Link) {
		l.targetMimeType = mimeType
	}
}

// WithMethod sets the HTTP method most suited to the link.
func WithMethod(method string) Option {
	return func(l *Link) {
		l.method = method
	}
}

// WithTitle sets a human-readable description of the link.
func WithTitle(title string) Option {
	return func(l *Link) {
		l.title = title
	}
}

// WithParams adds query string parameters, ordered by key.
func WithParams(params map[string]string) Option {
	return func(l *Link) {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			l.params = append(l.params, Param{Key: k, Value: params[k]})
		}
	}
}

// WithParam adds a single query string parameter after any previously added ones.
func WithParam(key, value string) Option {
	return func(l *Link) {
		l.params = append(l.params, Param{Key: key, Value: value})
	}
}

// IgnoreTargetProperties causes rendering to omit the ntiid and mime type that would otherwise
// be derived from the target.
func IgnoreTargetProperties() Option {
	return func(l *Link) {
		l.ignoreTargetProperties = true
	}
}

// HrefOnly causes the link to be rendered as its href string instead of a full link object.
func HrefOnly() Option {
	return func(l *Link) {
		l.hrefOnly = true
	}
}

// WithCreator sets the owner of the link. Identifier links are placed under their owner's path
// when possible.
func WithCreator(creator any) Option {
	return func(l *Link) {
		l.creator = creator
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil()
}

// New creates a link. The target is required and may be an object, a path or URL, or an NTIID
// string.
func New(rel string, target any, opts ...Option) (*Link, error) {
	if rel == "" {
		return nil, ErrEmptyRelation
	}
	if isNil(target) {
		return nil, errors.Wrapf(ErrNilTarget, "%v link", rel)
	}
	l := &Link{
		rel:    rel,
		target: target,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.targetMimeType != "" {
		if err := mimetype.Validate(l.targetMimeType); err != nil {
			return nil, errors.Wrapf(err, "invalid target mime type for %v link", rel)
		}
	}
	return l, nil
}

// MustNew is like New, but panics on error.
func MustNew(rel string, target any, opts ...Option) *Link {
	l, err := New(rel, target, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Link) AsLink() *Link {
	return l
}

func (l *Link) Rel() string {
	return l.rel
}

func (l *Link) Target() any {
	return l.target
}

// Elements returns a copy of the link's additional path segments.
func (l *Link) Elements() []string {
	if len(l.elements) == 0 {
		return nil
	}
	return append([]string(nil), l.elements...)
}

func (l *Link) TargetMimeType() string {
	return l.targetMimeType
}

func (l *Link) Method() string {
	return l.method
}

func (l *Link) Title() string {
	return l.title
}

// Params returns a copy of the link's query string parameters.
func (l *Link) Params() []Param {
	if len(l.params) == 0 {
		return nil
	}
	return append([]Param(nil), l.params...)
}

func (l *Link) IgnoreTargetProperties() bool {
	return l.ignoreTargetProperties
}

func (l *Link) IsHrefOnly() bool {
	return l.hrefOnly
}

// Creator returns the owner given via WithCreator, if any.
func (l *Link) Creator() any {
	return l.creator
}

func (l *Link) MimeType() string {
	return MimeType
}

// String describes the link without formatting its target, which may itself refer back to the
// link.
func (l *Link) String() string {
	return fmt.Sprintf("<Link rel='%s' %T/%s>", l.rel, l.target, identity(l.target))
}

func identity(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%#x", rv.Pointer())
	}
	return "-"
}

// The encoding hooks use value receivers so that copies of a Link are refused as well.
var _ msgpack.CustomEncoder = Link{}

func (Link) MarshalBinary() ([]byte, error) {
	return nil, ErrNotPersistable
}

func (Link) GobEncode() ([]byte, error) {
	return nil, ErrNotPersistable
}

func (Link) EncodeMsgpack(*msgpack.Encoder) error {
	return ErrNotPersistable
}

// MarshalJSON always fails. Links must be rendered with a Renderer before being encoded.
func (Link) MarshalJSON() ([]byte, error) {
	return nil, ErrNotPersistable
}
