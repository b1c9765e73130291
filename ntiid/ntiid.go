// Package ntiid implements the grammar of NTIIDs, the structured identifier strings used to
// name content entities:
//
//	tag:<authority>,<date>:<provider>-<type>-<specific>
//
// The provider is optional. When the specific part has no hyphen at all, the whole part is the
// type.
package ntiid

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	// TypeOID is the type of identifiers that name a stored object directly.
	TypeOID = "OID"

	// TypeHTMLPage is the type of identifiers naming rendered content pages.
	TypeHTMLPage = "HTML"

	// DateDefault is the date component used by identifiers minted with the default authority.
	DateDefault = "2011-10"

	// AuthorityDefault is the default naming authority.
	AuthorityDefault = "nextthought.com"
)

var ErrInvalid = errors.New("invalid ntiid")

var grammar = regexp.MustCompile(`^tag:([^,:\s]+),(\d{4}-\d{2}(?:-\d{2})?):([^:\s]+)$`)

// Parts are the components of a parsed identifier.
type Parts struct {
	Authority string
	Date      string
	Provider  string
	Type      string
	Specific  string
}

// IsValid reports whether s is a well-formed identifier string.
func IsValid(s string) bool {
	return grammar.MatchString(s)
}

// Parse splits s into its components.
func Parse(s string) (Parts, error) {
	m := grammar.FindStringSubmatch(s)
	if m == nil {
		return Parts{}, errors.Wrapf(ErrInvalid, "%q", s)
	}
	ret := Parts{
		Authority: m[1],
		Date:      m[2],
	}
	switch specific := strings.SplitN(m[3], "-", 3); len(specific) {
	case 3:
		ret.Provider, ret.Type, ret.Specific = specific[0], specific[1], specific[2]
	case 2:
		ret.Type, ret.Specific = specific[0], specific[1]
	default:
		ret.Type = specific[0]
	}
	return ret, nil
}

// Kind returns the type component of s, or an empty string if s is not valid.
func Kind(s string) string {
	parts, err := Parse(s)
	if err != nil {
		return ""
	}
	return parts.Type
}

// IsOfType reports whether s is a valid identifier whose type is t.
func IsOfType(s, t string) bool {
	return IsValid(s) && Kind(s) == t
}

// String reassembles the identifier.
func (p Parts) String() string {
	specific := p.Type
	if p.Specific != "" {
		specific += "-" + p.Specific
	}
	if p.Provider != "" {
		specific = p.Provider + "-" + specific
	}
	authority := p.Authority
	if authority == "" {
		authority = AuthorityDefault
	}
	date := p.Date
	if date == "" {
		date = DateDefault
	}
	return "tag:" + authority + "," + date + ":" + specific
}
