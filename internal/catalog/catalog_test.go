package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	c := New()

	p, ok := c.Lookup("birthday")
	require.True(t, ok)
	assert.Equal(t, "Musique d'Anniversaire Personnalisée", p.Name)
	assert.Equal(t, int64(1990), p.Price)

	_, ok = c.Lookup("unknown")
	assert.False(t, ok)

	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestProductsOrder(t *testing.T) {
	c := New()

	products := c.Products()
	require.Len(t, products, 3)

	ids := []string{products[0].ID, products[1].ID, products[2].ID}
	assert.Equal(t, []string{"birthday", "romantic", "party"}, ids)

	for _, p := range products {
		assert.Equal(t, int64(1990), p.Price)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
	}
}

func TestIsMusicStyle(t *testing.T) {
	for _, style := range MusicStyles {
		assert.True(t, IsMusicStyle(style), style)
	}

	assert.False(t, IsMusicStyle("techno"))
	assert.False(t, IsMusicStyle(""))
	assert.False(t, IsMusicStyle("Pop"))
}
