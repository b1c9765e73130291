package links

import "github.com/pkg/errors"

var (
	// ErrNilTarget is returned when a link is constructed or rendered without a target.
	ErrNilTarget = errors.New("links: link target must not be nil")

	ErrEmptyRelation = errors.New("links: link relation must not be empty")

	// ErrNotPersistable is returned by every encoding hook of Link. Links are generated at
	// runtime and must be recomputed rather than stored.
	ErrNotPersistable = errors.New("links: links cannot be persisted")

	// ErrNoGlobalRoot is returned by the default GlobalRootPath collaborator.
	ErrNoGlobalRoot = errors.New("links: no global root registered")
)
