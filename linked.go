package links

// Linked is implemented by objects that possess links to other objects.
type Linked interface {
	Links() []*Link
}

// Created is implemented by objects that have an owner. Identifier links to created objects
// are rendered under the owner's resource path.
type Created interface {
	Creator() any
}

// Identified is implemented by targets that have an NTIID.
type Identified interface {
	NTIID() string
}

func creatorOf(v any) any {
	if c, ok := v.(Created); ok {
		return c.Creator()
	}
	return nil
}
