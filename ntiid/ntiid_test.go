package ntiid

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	for name, tc := range map[string]struct {
		In   string
		Okay bool
	}{
		"Full": {
			In:   "tag:nextthought.com,2011-10:BLEACH-NTIVideo-Ichigo.vs.Aizen",
			Okay: true,
		},
		"TypeOnly": {
			In:   "tag:x,2011-10:FOO",
			Okay: true,
		},
		"FullDate": {
			In:   "tag:nextthought.com,2011-10-01:OID-0x01",
			Okay: true,
		},
		"Path": {
			In:   "/dataserver2/users",
			Okay: false,
		},
		"URL": {
			In:   "https://www.google.com",
			Okay: false,
		},
		"MissingDate": {
			In:   "tag:nextthought.com:FOO",
			Okay: false,
		},
		"ExtraColon": {
			In:   "tag:nextthought.com,2011-10:FOO:BAR",
			Okay: false,
		},
		"Whitespace": {
			In:   "tag:nextthought.com,2011-10:FOO BAR",
			Okay: false,
		},
		"Empty": {
			In:   "",
			Okay: false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.Okay, IsValid(tc.In))
		})
	}
}

func TestParse(t *testing.T) {
	parts, err := Parse("tag:nextthought.com,2011-10:BLEACH-OID-Ichigo.vs.Aizen")
	require.NoError(t, err)
	assert.Equal(t, Parts{
		Authority: "nextthought.com",
		Date:      "2011-10",
		Provider:  "BLEACH",
		Type:      TypeOID,
		Specific:  "Ichigo.vs.Aizen",
	}, parts)
	assert.Equal(t, "tag:nextthought.com,2011-10:BLEACH-OID-Ichigo.vs.Aizen", parts.String())

	parts, err = Parse("tag:x,2011-10:FOO")
	require.NoError(t, err)
	assert.Equal(t, "FOO", parts.Type)
	assert.Empty(t, parts.Provider)
	assert.Empty(t, parts.Specific)

	parts, err = Parse("tag:x,2011-10:OID-1-2-3")
	require.NoError(t, err)
	assert.Equal(t, "OID", parts.Provider)
	assert.Equal(t, "1", parts.Type)
	assert.Equal(t, "2-3", parts.Specific)

	_, err = Parse("not an ntiid")
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestIsOfType(t *testing.T) {
	assert.True(t, IsOfType("tag:nextthought.com,2011-10:BLEACH-OID-Ichigo", TypeOID))
	assert.True(t, IsOfType("tag:nextthought.com,2011-10:OID-0x01", TypeOID))
	assert.False(t, IsOfType("tag:nextthought.com,2011-10:BLEACH-NTIVideo-Ichigo", TypeOID))
	assert.False(t, IsOfType("/Objects/foo", TypeOID))
	assert.Equal(t, "", Kind("/Objects/foo"))

	assert.True(t, IsOfType("tag:nextthought.com,2011-10:NTI-HTML-book/chapter", TypeHTMLPage))
	assert.Equal(t, TypeHTMLPage, Kind("tag:nextthought.com,2011-10:NTI-HTML-book/chapter"))
}

func TestPartsStringDefaults(t *testing.T) {
	assert.Equal(t, "tag:nextthought.com,2011-10:OID-0x01", Parts{Type: TypeOID, Specific: "0x01"}.String())
}
