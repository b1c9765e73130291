package links

import (
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nextthought/links/ntiid"
	"github.com/nextthought/links/traversal"
)

// Standard keys of externalized objects.
const (
	ClassField = "Class"
	HrefField  = "href"
	LinksField = "Links"
)

// ExternalMapping is the externalized form of an object.
type ExternalMapping map[string]any

// Rendered is the full externalized form of a link.
type Rendered struct {
	Class  string `json:"Class"`
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Type   string `json:"type,omitempty"`
	NTIID  string `json:"ntiid,omitempty"`
	Method string `json:"method,omitempty"`
	Title  string `json:"title,omitempty"`
}

// Mapping returns the rendered link as an externalized mapping. Empty optional fields are
// omitted.
func (r *Rendered) Mapping() ExternalMapping {
	ret := ExternalMapping{
		ClassField: r.Class,
		HrefField:  r.Href,
		"rel":      r.Rel,
	}
	if r.Type != "" {
		ret["type"] = r.Type
	}
	if r.NTIID != "" {
		ret["ntiid"] = r.NTIID
	}
	if r.Method != "" {
		ret["method"] = r.Method
	}
	if r.Title != "" {
		ret["title"] = r.Title
	}
	return ret
}

// Renderer renders links into their externalized form.
type Renderer struct {
	logger        logrus.FieldLogger
	site          any
	collaborators Collaborators
}

func NewRenderer(cfg *Config) *Renderer {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Renderer{
		logger:        logger,
		site:          cfg.Site,
		collaborators: cfg.Collaborators.withDefaults(),
	}
}

// quote percent-encodes everything except unreserved characters and "/". Unlike url.PathEscape,
// colons and commas are escaped, which identifiers are full of.
func quote(s string) string {
	return strings.NewReplacer("+", "%20", "%2F", "/").Replace(url.QueryEscape(s))
}

func encodeParams(params []Param) string {
	var buf strings.Builder
	for i, p := range params {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(p.Key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(p.Value))
	}
	return buf.String()
}

// RenderLink computes the full externalized form of a link, regardless of whether it is
// href-only.
//
// The site is used as the root of last resort for identifier links. If nil, the renderer's
// configured site is used.
//
// Errors locating the target are returned as-is (wrapped) and indicate a link that should
// never have been created.
func (r *Renderer) RenderLink(l Linker, site any) (*Rendered, error) {
	link := asLink(l)
	if link == nil || isNil(link.target) {
		return nil, ErrNilTarget
	}
	if site == nil {
		site = r.site
	}
	c := r.collaborators
	target := link.target

	contentType := link.targetMimeType
	contentTypeDerived := false
	if contentType == "" {
		contentType = c.InferMimeType(target)
		contentTypeDerived = true
	}

	id := ""
	idDerived := false
	if t, ok := target.(Identified); ok && t.NTIID() != "" {
		id = t.NTIID()
		idDerived = true
	} else if s, ok := target.(string); ok && c.IsValidIdentifier(s) {
		id = s
	}

	var href string
	if s, ok := target.(string); id != "" && !c.HasTraversablePath(target) {
		href = id
		if c.IsValidIdentifier(id) {
			root, err := r.rootForLink(link, site)
			if err != nil {
				return nil, errors.Wrapf(err, "error finding root for %v link to %v", link.rel, id)
			}
			root = strings.TrimSuffix(root, "/")
			if c.IdentifierKind(id) == ntiid.TypeOID {
				href = root + "/Objects/" + quote(id)
			} else {
				href = root + "/NTIIDs/" + quote(id)
			}
		}
	} else if ok && c.IsValidResourcePath(s) {
		href = s
	} else {
		path, err := c.ResourcePath(target)
		if err != nil {
			return nil, errors.Wrapf(err, "error computing path for %v link with elements %v", link.rel, link.elements)
		}
		href = path
	}

	if len(link.elements) > 0 {
		if !strings.HasSuffix(href, "/") {
			href += "/"
		}
		href += strings.Join(link.elements, "/")
	}
	if len(link.params) > 0 {
		href += "?" + encodeParams(link.params)
	}

	ret := &Rendered{
		Class:  "Link",
		Href:   href,
		Rel:    link.rel,
		Method: link.method,
		Title:  link.title,
	}
	if contentType != "" {
		// with a method, the type is only shown if it was given explicitly
		if link.method != "" && link.targetMimeType != "" {
			ret.Type = contentType
		} else if link.method == "" && !link.ignoreTargetProperties && !contentTypeDerived {
			ret.Type = contentType
		}
	}
	if c.IsValidIdentifier(id) && (!link.ignoreTargetProperties || !idDerived) {
		ret.NTIID = id
	}

	if !c.IsValidResourcePath(href) && !c.IsValidIdentifier(href) {
		return nil, &traversal.TraversalError{Href: href}
	}
	return ret, nil
}

// Render renders a link into an ExternalMapping, or into its href string if the link is
// href-only.
func (r *Renderer) Render(l Linker, site any) (any, error) {
	rendered, err := r.RenderLink(l, site)
	if err != nil {
		return nil, err
	}
	if l.AsLink().hrefOnly {
		return rendered.Href, nil
	}
	return rendered.Mapping(), nil
}

// MarshalJSON renders a link and encodes the result.
func (r *Renderer) MarshalJSON(l Linker, site any) ([]byte, error) {
	v, err := r.Render(l, site)
	if err != nil {
		return nil, err
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
}
