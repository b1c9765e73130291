package links

import (
	"github.com/sirupsen/logrus"

	"github.com/nextthought/links/mimetype"
	"github.com/nextthought/links/ntiid"
	"github.com/nextthought/links/traversal"
)

// Config defines the collaborators and other parameters for a Renderer.
type Config struct {
	Logger logrus.FieldLogger

	// The site used as the root of last resort when rendering identifier links. It is used when
	// no site is passed to Render and no global root is registered.
	Site any

	// Any nil collaborators are replaced with the defaults.
	Collaborators Collaborators
}

// Collaborators are the lookups a Renderer depends on.
type Collaborators struct {
	// InferMimeType returns the content type of a target, or an empty string if unknown.
	InferMimeType func(target any) string

	IsValidIdentifier func(s string) bool

	// IdentifierKind returns the type component of an identifier. Identifiers of kind
	// ntiid.TypeOID are rendered under /Objects/.
	IdentifierKind func(s string) string

	IsValidResourcePath func(s string) bool

	// ResourcePath returns the canonical path of an object. It should fail with a
	// *traversal.TypeError if the object cannot be located at all and a
	// *traversal.LocationError if it is detached.
	ResourcePath func(obj any) (string, error)

	// HasTraversablePath reports whether an identified target should nonetheless be linked to
	// by resource path.
	HasTraversablePath func(target any) bool

	// GlobalRootPath returns the path that identifier links are placed under when they have no
	// owner. If it fails, the site is used instead.
	GlobalRootPath func() (string, error)
}

// DefaultCollaborators returns collaborators backed by this module's ntiid, mimetype, and
// traversal packages.
func DefaultCollaborators() Collaborators {
	return Collaborators{
		InferMimeType:       mimetype.FromObject,
		IsValidIdentifier:   ntiid.IsValid,
		IdentifierKind:      ntiid.Kind,
		IsValidResourcePath: traversal.IsValidResourcePath,
		ResourcePath:        traversal.ResourcePath,
		HasTraversablePath:  traversal.HasTraversablePath,
		GlobalRootPath: func() (string, error) {
			return "", ErrNoGlobalRoot
		},
	}
}

func (c Collaborators) withDefaults() Collaborators {
	d := DefaultCollaborators()
	if c.InferMimeType == nil {
		c.InferMimeType = d.InferMimeType
	}
	if c.IsValidIdentifier == nil {
		c.IsValidIdentifier = d.IsValidIdentifier
	}
	if c.IdentifierKind == nil {
		c.IdentifierKind = d.IdentifierKind
	}
	if c.IsValidResourcePath == nil {
		c.IsValidResourcePath = d.IsValidResourcePath
	}
	if c.ResourcePath == nil {
		c.ResourcePath = d.ResourcePath
	}
	if c.HasTraversablePath == nil {
		c.HasTraversablePath = d.HasTraversablePath
	}
	if c.GlobalRootPath == nil {
		c.GlobalRootPath = d.GlobalRootPath
	}
	return c
}
