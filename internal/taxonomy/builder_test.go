package taxonomy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/omarchive/internal/assembler"
	"github.com/vvka-141/omarchive/internal/identity"
	"github.com/vvka-141/omarchive/internal/logging"
	"github.com/vvka-141/omarchive/internal/vocabulary"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

func newTestBuilder(t *testing.T) (*Builder, *assembler.Assembler) {
	t.Helper()
	a := assembler.New(identity.New(), logging.NewNullLogger())
	return New(a, logging.NewNullLogger()), a
}

func TestKey_QualifiedNames(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{"root", Key{}, "OpenMetadataTypes:ValidValues"},
		{"type", Key{TypeName: "Asset"}, "OpenMetadataTypes:ValidValues:Asset"},
		{"property", Key{TypeName: "Asset", PropertyName: "deployedImplementationType"}, "OpenMetadataTypes:ValidValues:Asset.deployedImplementationType"},
		{"map", Key{TypeName: "Connection", PropertyName: "securedProperties", MapName: "userId"}, "OpenMetadataTypes:ValidValues:Connection.securedProperties[userId]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.QualifiedName())
		})
	}

	key := Key{TypeName: "Connection", PropertyName: "securedProperties", MapName: "userId"}
	assert.Equal(t, "ValidMetadataValue:Connection.securedProperties[userId]=admin", key.ValueQualifiedName("admin"))
}

func TestKey_Parent(t *testing.T) {
	key := Key{TypeName: "A", PropertyName: "p", MapName: "m"}
	assert.Equal(t, Key{TypeName: "A", PropertyName: "p"}, key.Parent())
	assert.Equal(t, Key{TypeName: "A"}, key.Parent().Parent())
	assert.True(t, key.Parent().Parent().Parent().IsRoot())
}

func TestCategory_MalformedTuple(t *testing.T) {
	b, a := newTestBuilder(t)

	_, err := b.Category("Asset", "", "mapName")
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))

	_, err = b.Category("", "property", "")
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))

	assert.Equal(t, 0, a.Stats().Nodes, "malformed tuples must not touch the graph")
}

func TestKey_ReservedCharactersRejected(t *testing.T) {
	// Both keys would render as "OpenMetadataTypes:ValidValues:A.b".
	require.NoError(t, Key{TypeName: "A", PropertyName: "b"}.Validate())
	assert.True(t, errors.Is(Key{TypeName: "A.b"}.Validate(), omarchive.ErrInvalidArgument))

	for _, key := range []Key{
		{TypeName: "A[x]"},
		{TypeName: "A", PropertyName: "b.c"},
		{TypeName: "A", PropertyName: "b[x]"},
		{TypeName: "A", PropertyName: "b=x"},
	} {
		assert.True(t, errors.Is(key.Validate(), omarchive.ErrInvalidArgument), "%+v", key)
	}
}

func TestCategory_AmbiguousNameRejectedBeforeGraph(t *testing.T) {
	b, a := newTestBuilder(t)

	_, err := b.Category("A", "b", "")
	require.NoError(t, err)
	nodes := a.Stats().Nodes

	_, err = b.Category("A.b", "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))
	assert.False(t, errors.Is(err, omarchive.ErrDuplicateTaxonomyNode))
	assert.Equal(t, nodes, a.Stats().Nodes)
}

func TestCategory_CreatesParentsOnce(t *testing.T) {
	b, a := newTestBuilder(t)

	guid, err := b.Category("Connection", "securedProperties", "userId")
	require.NoError(t, err)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 4, a.Stats().Nodes)
	assert.Equal(t, 3, a.Stats().Edges)

	again, err := b.Category("Connection", "securedProperties", "userId")
	require.NoError(t, err)
	assert.Equal(t, guid, again)

	_, err = b.Category("Connection", "securedProperties", "password")
	require.NoError(t, err)
	assert.Equal(t, 5, b.Len(), "sibling reuses root, type and property levels")
	assert.Equal(t, 5, a.Stats().Nodes)
}

func TestCategory_ParentsLinkedTopDown(t *testing.T) {
	b, a := newTestBuilder(t)

	leaf, err := b.Category("Asset", "deployedImplementationType", "")
	require.NoError(t, err)

	typeGUID, ok := b.Lookup(Key{TypeName: "Asset"})
	require.True(t, ok)
	rootGUID, ok := b.Lookup(Key{})
	require.True(t, ok)

	_, rels := a.Snapshot()
	parents := map[string]string{}
	for _, r := range rels {
		require.Equal(t, vocabulary.ValidValuesMember, r.TypeName)
		parents[r.End2GUID] = r.End1GUID
	}
	assert.Equal(t, typeGUID, parents[leaf])
	assert.Equal(t, rootGUID, parents[typeGUID])
}

func TestCategory_DuplicateNodeOutsideCache(t *testing.T) {
	b, a := newTestBuilder(t)

	_, err := a.AddNode(assembler.NodeSpec{
		TypeName:      vocabulary.ValidValueSet,
		QualifiedName: RootQualifiedName,
	})
	require.NoError(t, err)

	_, err = b.Category("Asset", "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrDuplicateTaxonomyNode))
	assert.Equal(t, omarchive.ExitDuplicateTaxonomyNode, omarchive.ExitCodeForError(err))
}

func TestValue_LinksToSingleCategory(t *testing.T) {
	b, a := newTestBuilder(t)

	first, err := b.Value("Referenceable", "deployedImplementationType", "", ValidValue{Value: "PostgreSQL Server", IsDefault: true})
	require.NoError(t, err)
	second, err := b.Value("Referenceable", "deployedImplementationType", "", ValidValue{Value: "Apache Kafka Server"})
	require.NoError(t, err)

	category, ok := b.Lookup(Key{TypeName: "Referenceable", PropertyName: "deployedImplementationType"})
	require.True(t, ok)

	_, rels := a.Snapshot()
	memberOf := map[string]string{}
	defaults := map[string]interface{}{}
	for _, r := range rels {
		memberOf[r.End2GUID] = r.End1GUID
		if r.End2GUID == first || r.End2GUID == second {
			defaults[r.End2GUID] = r.Properties[vocabulary.PropIsDefaultValue]
		}
	}
	assert.Equal(t, category, memberOf[first])
	assert.Equal(t, category, memberOf[second])
	assert.Equal(t, true, defaults[first])
	assert.Equal(t, false, defaults[second])

	node, ok := a.Node(first)
	require.True(t, ok)
	assert.Equal(t, "ValidMetadataValue:Referenceable.deployedImplementationType=PostgreSQL Server", node.QualifiedName)
	assert.Equal(t, vocabulary.ValidValueDefinition, node.TypeName)
	assert.Equal(t, "PostgreSQL Server", node.Properties[vocabulary.PropPreferredValue])

	key, ok := b.CategoryOf(second)
	require.True(t, ok)
	assert.Equal(t, "deployedImplementationType", key.PropertyName)
}

func TestValue_RequiresPropertyAndValue(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, err := b.Value("Asset", "", "", ValidValue{Value: "x"})
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))

	_, err = b.Value("Asset", "name", "", ValidValue{})
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))
}

func TestValue_TwiceIsDuplicate(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, err := b.Value("Asset", "name", "", ValidValue{Value: "x"})
	require.NoError(t, err)
	_, err = b.Value("Asset", "name", "", ValidValue{Value: "x"})
	assert.True(t, errors.Is(err, assembler.ErrDuplicateNode))
}

func TestKeys_Sorted(t *testing.T) {
	b, _ := newTestBuilder(t)
	_, err := b.Category("Zeta", "", "")
	require.NoError(t, err)
	_, err = b.Category("Alpha", "p", "")
	require.NoError(t, err)

	keys := b.Keys()
	require.Len(t, keys, 4)
	assert.True(t, keys[0].IsRoot())
	assert.Equal(t, "Alpha", keys[1].TypeName)
	assert.Equal(t, "Alpha", keys[2].TypeName)
	assert.Equal(t, "Zeta", keys[3].TypeName)
}
