package traversal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoot struct{}

func (testRoot) TraversalRoot() {}

type testSite struct {
	path string
}

func (s *testSite) ResourcePath() (string, error) {
	return s.path, nil
}

type testNode struct {
	name   string
	parent any
}

func (n *testNode) LocationName() string { return n.name }
func (n *testNode) LocationParent() any  { return n.parent }

type taggedNode struct {
	name   string
	parent any
	tags   any
}

func (n taggedNode) LocationName() string { return n.name }
func (n taggedNode) LocationParent() any  { return n.parent }

type traversableNode struct {
	testNode
}

func (traversableNode) ShouldHaveTraversablePath() bool { return true }

func TestResourcePath(t *testing.T) {
	root := testRoot{}
	users := &testNode{name: "users", parent: root}
	site := &testSite{path: "/dataserver2/"}
	detached := &testNode{name: "lost"}
	orphanParent := &testNode{name: "child", parent: 42}
	cyclic := &testNode{name: "a"}
	cyclic.parent = &testNode{name: "b", parent: cyclic}

	for name, tc := range map[string]struct {
		In       any
		Expected string
		Check    func(error) bool
	}{
		"Root": {
			In:       root,
			Expected: "/",
		},
		"UnderRoot": {
			In:       &testNode{name: "tite.kubo", parent: users},
			Expected: "/users/tite.kubo",
		},
		"EscapedName": {
			In:       &testNode{name: "a b/c", parent: root},
			Expected: "/a%20b%2Fc",
		},
		"UncomparableNode": {
			In:       taggedNode{name: "tagged", parent: users, tags: []string{"a"}},
			Expected: "/users/tagged",
		},
		"Site": {
			In:       site,
			Expected: "/dataserver2/",
		},
		"UnderSite": {
			In:       &testNode{name: "Objects", parent: site},
			Expected: "/dataserver2/Objects",
		},
		"Nil": {
			In:    nil,
			Check: IsTypeError,
		},
		"TypedNil": {
			In:    (*testNode)(nil),
			Check: IsTypeError,
		},
		"String": {
			In:    "tite.kubo",
			Check: IsTypeError,
		},
		"Detached": {
			In:    detached,
			Check: IsLocationError,
		},
		"NonLocationParent": {
			In:    orphanParent,
			Check: IsLocationError,
		},
		"Cycle": {
			In:    cyclic,
			Check: IsLocationError,
		},
	} {
		t.Run(name, func(t *testing.T) {
			path, err := ResourcePath(tc.In)
			if tc.Check != nil {
				require.Error(t, err)
				assert.True(t, tc.Check(err), err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.Expected, path)
			}
		})
	}
}

func TestIsValidResourcePath(t *testing.T) {
	assert.True(t, IsValidResourcePath("/dataserver2"))
	assert.True(t, IsValidResourcePath("https://www.google.com"))
	assert.True(t, IsValidResourcePath("http://www.google.com"))
	assert.False(t, IsValidResourcePath("tag:nextthought.com,2011-10:FOO"))
	assert.False(t, IsValidResourcePath("dataserver2"))
	assert.False(t, IsValidResourcePath(""))
}

func TestHasTraversablePath(t *testing.T) {
	assert.True(t, HasTraversablePath(&traversableNode{}))
	assert.False(t, HasTraversablePath(&testNode{}))
	assert.False(t, HasTraversablePath(nil))
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	err := errors.Wrap(&LocationError{Object: 1, Reason: "x"}, "rendering")
	assert.True(t, IsLocationError(err))
	assert.False(t, IsTypeError(err))
	assert.True(t, IsTraversalError(errors.Wrap(&TraversalError{Href: "x"}, "rendering")))
}

func TestPath(t *testing.T) {
	path, err := ResourcePath(Path("/dataserver2"))
	require.NoError(t, err)
	assert.Equal(t, "/dataserver2", path)

	path, err = ResourcePath(&testNode{name: "users", parent: Path("/dataserver2/")})
	require.NoError(t, err)
	assert.Equal(t, "/dataserver2/users", path)

	_, err = ResourcePath(Path("dataserver2"))
	assert.True(t, IsLocationError(err))
}
