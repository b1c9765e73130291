package links

// Decorate renders any links that were left in an externalized object. If obj is a []any, link
// elements are replaced in place. If obj is a mapping with a non-empty "Links" sequence, the
// sequence is replaced with one in which links are rendered and other values are untouched.
//
// Decoration is best-effort and never fails: links that cannot be rendered are logged and
// dropped from "Links". Elements of a bare []any cannot be dropped in place and become nil.
func (r *Renderer) Decorate(obj any) {
	switch obj := obj.(type) {
	case []any:
		for i, v := range obj {
			l, ok := v.(Linker)
			if !ok {
				continue
			}
			if rendered, err := r.Render(l, nil); err != nil {
				r.logger.WithError(err).Errorf("error rendering link %v", l)
				obj[i] = nil
			} else {
				obj[i] = rendered
			}
		}
	case ExternalMapping:
		r.decorateMapping(obj)
	case map[string]any:
		r.decorateMapping(obj)
	}
}

func (r *Renderer) decorateMapping(m map[string]any) {
	var items []any
	switch v := m[LinksField].(type) {
	case []any:
		items = v
	case []*Link:
		for _, l := range v {
			items = append(items, l)
		}
	case []Linker:
		for _, l := range v {
			items = append(items, l)
		}
	}
	if len(items) == 0 {
		return
	}
	m[LinksField] = r.renderAll(items, nil)
}

func (r *Renderer) renderAll(items []any, site any) []any {
	ret := make([]any, 0, len(items))
	for _, v := range items {
		l, ok := v.(Linker)
		if !ok {
			ret = append(ret, v)
			continue
		}
		rendered, err := r.Render(l, site)
		if err != nil {
			r.logger.WithError(err).Errorf("error rendering link %v", l)
			continue
		}
		ret = append(ret, rendered)
	}
	return ret
}

// RenderLinked renders the links of obj with the same best-effort semantics as Decorate.
func (r *Renderer) RenderLinked(obj Linked, site any) []any {
	links := obj.Links()
	items := make([]any, 0, len(links))
	for _, l := range links {
		items = append(items, l)
	}
	return r.renderAll(items, site)
}
