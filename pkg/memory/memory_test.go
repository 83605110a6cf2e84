package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

func TestNewCatalog(t *testing.T) {
	cat, err := NewCatalog()
	require.NoError(t, err)
	assert.Len(t, cat.ListProducts(), 2)
}

func TestNewCatalogWithSeed(t *testing.T) {
	seed := []types.Product{{ProductID: 4, Prefix: "zzz"}}

	cat, err := NewCatalog(WithSeed(seed))
	require.NoError(t, err)

	p, err := cat.CreateProduct(types.ProductInput{Prefix: "next"})
	require.NoError(t, err)
	assert.Equal(t, 5, p.ProductID)

	require.NoError(t, cat.Reset())
	products := cat.ListProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "zzz", products[0].Prefix)
}

func TestNewCatalogRejectsBadSeed(t *testing.T) {
	seed := []types.Product{{ProductID: 1}, {ProductID: 1}}

	cat, err := NewCatalog(WithSeed(seed))
	assert.Nil(t, cat)
	assert.True(t, errors.Is(err, types.ErrInternal))
}

func TestSeedIsACopy(t *testing.T) {
	a := Seed()
	a[0].Prefix = "changed"
	assert.Equal(t, "abc", Seed()[0].Prefix)
}
