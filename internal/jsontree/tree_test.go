package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailFixture = `{
	"id": 25,
	"name": "pikachu",
	"caught": true,
	"held_item": null,
	"types": [{"type": {"name": "electric"}}]
}`

func TestParse(t *testing.T) {
	root, err := Parse([]byte(detailFixture))
	require.NoError(t, err)

	assert.Equal(t, KindObject, root.Kind)
	assert.Equal(t, "$", root.Path)
	assert.Equal(t, 0, root.Depth)
	require.Len(t, root.Children, 5)

	// Key order is preserved.
	keys := make([]string, 0, len(root.Children))
	for _, c := range root.Children {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"id", "name", "caught", "held_item", "types"}, keys)

	id := root.Children[0]
	assert.Equal(t, KindNumber, id.Kind)
	assert.Equal(t, "25", id.Value)
	assert.Equal(t, "$.id", id.Path)

	name := root.Children[1]
	assert.Equal(t, KindString, name.Kind)
	assert.Equal(t, `"pikachu"`, name.Value)

	assert.Equal(t, KindBool, root.Children[2].Kind)
	assert.Equal(t, KindNull, root.Children[3].Kind)

	types := root.Children[4]
	assert.Equal(t, KindArray, types.Kind)
	require.Len(t, types.Children, 1)
	assert.Equal(t, "$.types[0]", types.Children[0].Path)

	typeName := types.Children[0].Children[0].Children[0]
	assert.Equal(t, "$.types[0].type.name", typeName.Path)
	assert.Equal(t, `"electric"`, typeName.Value)
	assert.Equal(t, 4, typeName.Depth)
}

func TestParse_Scalars(t *testing.T) {
	root, err := Parse([]byte(`42.5`))
	require.NoError(t, err)
	assert.Equal(t, KindNumber, root.Kind)
	assert.Equal(t, "42.5", root.Value)
	assert.False(t, root.IsContainer())
}

func TestParse_Failures(t *testing.T) {
	for _, body := range []string{``, `{`, `{"a":}`, `1 2`, `tru`} {
		_, err := Parse([]byte(body))
		assert.Error(t, err, "input %q", body)
	}
}

func TestInitialView_CollapsesBelowDepthOne(t *testing.T) {
	v := InitialView([]byte(detailFixture))

	assert.False(t, v.IsCollapsed("$"))
	assert.True(t, v.IsCollapsed("$.types"))
	assert.True(t, v.IsCollapsed("$.types[0]"))
}

func TestInitialView_UnparseablePayload(t *testing.T) {
	v := InitialView([]byte("not json"))
	assert.Equal(t, 0, v.Len())
}

func TestWithToggled_IsPure(t *testing.T) {
	root, err := Parse([]byte(detailFixture))
	require.NoError(t, err)

	v1 := CollapseBelow(root, 1)
	v2 := v1.WithToggled("$.types")

	assert.True(t, v1.IsCollapsed("$.types"), "original view must not change")
	assert.False(t, v2.IsCollapsed("$.types"))

	v3 := v2.WithToggled("$.types")
	assert.True(t, v3.IsCollapsed("$.types"))
}

func TestFlatten(t *testing.T) {
	root, err := Parse([]byte(detailFixture))
	require.NoError(t, err)

	rows := Flatten(root, CollapseBelow(root, 1))

	paths := make([]string, 0, len(rows))
	for _, r := range rows {
		paths = append(paths, r.Node.Path)
	}
	// Children of the collapsed types array are hidden.
	assert.Equal(t, []string{"$", "$.id", "$.name", "$.caught", "$.held_item", "$.types"}, paths)

	expanded := Flatten(root, EmptyView())
	assert.Len(t, expanded, 10)
}

func TestFlatten_CollapseAll(t *testing.T) {
	root, err := Parse([]byte(detailFixture))
	require.NoError(t, err)

	rows := Flatten(root, CollapseBelow(root, 0))
	require.Len(t, rows, 1)
	assert.Equal(t, "$", rows[0].Node.Path)
	assert.True(t, rows[0].Collapsed)
}
