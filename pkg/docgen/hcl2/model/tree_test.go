package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeRegister(t *testing.T) {
	tree := NewTree()
	assert.Equal(t, "chef", tree.Root().Path())
	assert.Equal(t, KindChef, tree.KindOf(tree.Root()))

	cookbook := NewCookbookObject(tree, tree.Root(), "apache2")
	require.NoError(t, tree.Register(cookbook))
	assert.Equal(t, "chef::apache2", cookbook.Path())

	resource := NewResourceObject(tree, cookbook, "site")
	provider := NewProviderObject(tree, cookbook, "site")
	require.NoError(t, tree.Register(resource))
	require.NoError(t, tree.Register(provider), "a provider may share its resource's name")

	err := tree.Register(NewResourceObject(tree, cookbook, "site"))
	assert.EqualError(t, err, `resource "chef::apache2::site" already declared`)

	assert.Error(t, tree.Register(resource), "an object cannot be registered twice")

	orphan := NewCookbookObject(tree, tree.Root(), "orphan")
	assert.Error(t, tree.Register(NewResourceObject(tree, orphan, "lost")))

	assert.Error(t, tree.Register(NewNamespaceObject(KindChef, nil, "other")))

	assert.Equal(t, []Object{resource, provider}, tree.ChildrenOf(cookbook))
	assert.Equal(t, []Object{cookbook}, tree.ChildrenOf(tree.Root()))
	assert.Empty(t, tree.ChildrenOf(resource))
}

func TestTreeChildrenOfReturnsCopy(t *testing.T) {
	tree := NewTree()
	cookbook := NewCookbookObject(tree, tree.Root(), "apache2")
	require.NoError(t, tree.Register(cookbook))

	children := tree.ChildrenOf(tree.Root())
	children[0] = nil
	assert.Equal(t, []Object{cookbook}, tree.ChildrenOf(tree.Root()))
}

func TestTreeAllAndLookup(t *testing.T) {
	tree := NewTree()
	var resources []Object
	for _, name := range []string{"apache2", "mysql"} {
		cookbook := NewCookbookObject(tree, tree.Root(), name)
		require.NoError(t, tree.Register(cookbook))
		for _, r := range []string{"site", "module"} {
			resource := NewResourceObject(tree, cookbook, r)
			require.NoError(t, tree.Register(resource))
			require.NoError(t, tree.Register(NewAttributeObject(resource, "name")))
			resources = append(resources, resource)
		}
	}

	assert.Equal(t, resources, tree.All(KindResource))
	assert.Len(t, tree.All(KindAttribute), 4)
	assert.Len(t, tree.All(KindCookbook), 2)
	assert.Empty(t, tree.All(KindProvider))

	found, ok := tree.Lookup(KindResource, "chef::mysql::site")
	require.True(t, ok)
	assert.Same(t, resources[2], found)

	_, ok = tree.Lookup(KindProvider, "chef::mysql::site")
	assert.False(t, ok)
}
