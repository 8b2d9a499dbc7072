package cart

import (
	"testing"

	"ecomm_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func produit(id string, price float64) models.Product {
	return models.Product{
		ID:          id,
		Title:       "Produit " + id,
		Description: "description",
		Price:       price,
		Category:    "divers",
		Image:       "img-" + id + ".jpg",
	}
}

func TestAdd_NewLineThenIncrement(t *testing.T) {
	var c Cart

	c.Add(produit("p1", 10))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c.Add(produit("p1", 10))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)

	c.Add(produit("p2", 5))
	require.Len(t, c.Lines, 2)
}

func TestAdd_SnapshotIgnoresCatalogChanges(t *testing.T) {
	var c Cart
	c.Add(produit("p1", 10))

	// Le catalogue change de prix et de titre après l'ajout
	modified := produit("p1", 99)
	modified.Title = "Nouveau titre"
	c.Add(modified)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 10.0, c.Lines[0].Price)
	assert.Equal(t, "Produit p1", c.Lines[0].Title)
}

func TestSetQuantity(t *testing.T) {
	var c Cart
	c.Add(produit("p1", 10))

	require.NoError(t, c.SetQuantity("p1", 5))
	assert.Equal(t, 5, c.Lines[0].Quantity)

	assert.ErrorIs(t, c.SetQuantity("p1", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.SetQuantity("p1", -3), ErrInvalidQuantity)
	// La quantité n'a pas bougé
	assert.Equal(t, 5, c.Lines[0].Quantity)

	assert.ErrorIs(t, c.SetQuantity("absent", 2), ErrLineNotFound)
}

func TestRemove(t *testing.T) {
	var c Cart
	c.Add(produit("p1", 10))
	c.Add(produit("p2", 5))

	c.Remove("p1")
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "p2", c.Lines[0].ProductID)

	// Suppression d'un produit absent : no-op
	c.Remove("p1")
	assert.Len(t, c.Lines, 1)
}

func TestTotalAndItemCount(t *testing.T) {
	var c Cart
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.ItemCount())

	c.Add(produit("p1", 8.50))
	require.NoError(t, c.SetQuantity("p1", 3))
	c.Add(produit("p2", 2.25))

	assert.InDelta(t, 27.75, c.Total(), 1e-9)
	assert.Equal(t, 4, c.ItemCount())
	assert.False(t, c.IsEmpty())
}
