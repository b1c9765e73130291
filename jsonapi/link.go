package jsonapi

import (
	"github.com/pkg/errors"

	"github.com/nextthought/links"
)

// An object used to represent links.
//
// Within this object, a link MUST be represented as either:
//
// - a string whose value is a URI-reference [RFC3986 Section 4.1] pointing to the link’s target,
// - a link object or
// - null if the link does not exist.
type LinksObject map[string]any

// A “link object” is an object that represents a web link.
type LinkObject struct {
	// A string whose value is a URI-reference [RFC3986 Section 4.1] pointing to the link’s target.
	HREF string `json:"href"`

	// A string indicating the link’s relation type. The string MUST be a valid link relation type.
	RelationType string `json:"rel,omitempty"`

	// A string which serves as a label for the destination of a link such that it can be used as a
	// human-readable identifier (e.g., a menu entry).
	Title string `json:"title,omitempty"`

	// A string indicating the media type of the link’s target.
	Type string `json:"type,omitempty"`

	// A meta object containing non-standard meta-information about the link.
	Meta map[string]any `json:"meta,omitempty"`
}

// NewLinkObject converts a rendered link. The identifier and method have no JSON:API
// equivalent and are carried in the meta object.
func NewLinkObject(r *links.Rendered) LinkObject {
	ret := LinkObject{
		HREF:         r.Href,
		RelationType: r.Rel,
		Title:        r.Title,
		Type:         r.Type,
	}
	if r.NTIID != "" || r.Method != "" {
		ret.Meta = map[string]any{}
		if r.NTIID != "" {
			ret.Meta["ntiid"] = r.NTIID
		}
		if r.Method != "" {
			ret.Meta["method"] = r.Method
		}
	}
	return ret
}

var ErrDuplicateRelation = errors.New("jsonapi: duplicate link relation")

// NewLinksObject renders links into a links object keyed by relation. Href-only links are
// represented as strings.
func NewLinksObject(r *links.Renderer, site any, ls ...links.Linker) (LinksObject, error) {
	ret := make(LinksObject, len(ls))
	for _, l := range ls {
		rendered, err := r.RenderLink(l, site)
		if err != nil {
			return nil, err
		}
		if err := validateMemberName(rendered.Rel); err != nil {
			return nil, errors.Wrapf(err, "invalid link relation %q", rendered.Rel)
		}
		if _, ok := ret[rendered.Rel]; ok {
			return nil, errors.Wrapf(ErrDuplicateRelation, "%q", rendered.Rel)
		}
		if l.AsLink().IsHrefOnly() {
			ret[rendered.Rel] = rendered.Href
		} else {
			ret[rendered.Rel] = NewLinkObject(rendered)
		}
	}
	return ret, nil
}
