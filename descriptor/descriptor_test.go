package descriptor

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextthought/links"
)

const testDocument = `
- rel: google
  target: https://www.google.com
  method: GET
  elements: [mail]
  params:
    zoom: "2"
    app: "42"
- rel: video
  target: tag:nextthought.com,2011-10:BLEACH-NTIVideo-Ichigo
  creator: /dataserver2/users/ichigo
  href_only: true
  frame: {height: 480, width: 640}
---
rel: edit
target: /dataserver2/users/ichigo
title: Edit
target_mime_type: application/vnd.nextthought.user
ignore_target_properties: true
`

func TestLinks(t *testing.T) {
	ls, err := Links(strings.NewReader(testDocument))
	require.NoError(t, err)
	require.Len(t, ls, 3)

	google := ls[0].AsLink()
	assert.Equal(t, "google", google.Rel())
	assert.Equal(t, "https://www.google.com", google.Target())
	assert.Equal(t, []string{"mail"}, google.Elements())
	assert.Equal(t, []links.Param{{Key: "zoom", Value: "2"}, {Key: "app", Value: "42"}}, google.Params())
	assert.Equal(t, "GET", google.Method())

	video, ok := ls[1].(*links.FramedLink)
	require.True(t, ok)
	assert.Equal(t, 480, video.Height)
	assert.Equal(t, 640, video.Width)
	assert.True(t, video.IsHrefOnly())

	edit := ls[2].AsLink()
	assert.Equal(t, "Edit", edit.Title())
	assert.Equal(t, "application/vnd.nextthought.user", edit.TargetMimeType())
	assert.True(t, edit.IgnoreTargetProperties())

	logger, _ := test.NewNullLogger()
	r := links.NewRenderer(&links.Config{Logger: logger})
	rendered, err := r.Render(ls[0], nil)
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/mail?zoom=2&app=42", rendered.(links.ExternalMapping)["href"])

	rendered, err = r.Render(ls[1], nil)
	require.NoError(t, err)
	assert.Equal(t, "/dataserver2/users/ichigo/NTIIDs/tag%3Anextthought.com%2C2011-10%3ABLEACH-NTIVideo-Ichigo", rendered)
}

func TestLinks_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"MissingTarget":    "rel: self",
		"MissingRel":       "target: /a",
		"ScalarDocument":   "hello",
		"BadParams":        "{rel: self, target: /a, params: [a, b]}",
		"NestedParam":      "{rel: self, target: /a, params: {a: [1, 2]}}",
		"BadFrame":         "{rel: self, target: /a, frame: {height: 0, width: 1}}",
		"BadMimeType":      "{rel: self, target: /a, target_mime_type: nope}",
		"MalformedElement": "{rel: self, target: /a, elements: {a: b}}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Links(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := Links(strings.NewReader("rel: self"))
	assert.True(t, errors.Is(err, links.ErrNilTarget))
}

func TestDecode_Empty(t *testing.T) {
	descriptors, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, descriptors)
}
