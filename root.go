package links

import (
	"github.com/pkg/errors"

	"github.com/nextthought/links/traversal"
)

// rootForLink returns the path that an identifier link should be placed under: the most
// specific owner available, otherwise the global root, otherwise the site.
func (r *Renderer) rootForLink(link *Link, site any) (string, error) {
	for _, owner := range []any{creatorOf(link.target), link.creator} {
		if isNil(owner) {
			continue
		}
		path, err := r.collaborators.ResourcePath(owner)
		if err == nil {
			return path, nil
		} else if !traversal.IsTypeError(err) {
			return "", err
		}
	}

	root, err := r.collaborators.GlobalRootPath()
	if err == nil {
		return root, nil
	}
	r.logger.WithError(err).Warn("no global root found, using the site as the root. this should only happen in tests")

	root, err = r.collaborators.ResourcePath(site)
	if err != nil {
		return "", errors.Wrap(err, "error computing site path")
	}
	return root, nil
}
