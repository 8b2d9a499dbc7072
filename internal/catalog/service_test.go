package catalog

import (
	"context"
	"strconv"
	"testing"
	"time"

	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductStore struct {
	products map[string]models.Product
	seq      int
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[string]models.Product)}
}

func (f *fakeProductStore) All(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductStore) Get(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	f.seq++
	p.ID = "prod-" + strconv.Itoa(f.seq)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, id string, u models.ProductUpdate) error {
	p, ok := f.products[id]
	if !ok {
		return store.ErrNotFound
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	f.products[id] = p
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func seed(f *fakeProductStore) {
	now := time.Now().UTC()
	f.products["a"] = models.Product{ID: "a", Title: "Clavier mécanique", Description: "switches rouges", Price: 89, Category: "informatique", CreatedAt: now.Add(-2 * time.Hour)}
	f.products["b"] = models.Product{ID: "b", Title: "Souris sans fil", Description: "capteur optique", Price: 35, Category: "informatique", CreatedAt: now.Add(-time.Hour)}
	f.products["c"] = models.Product{ID: "c", Title: "Tapis de souris", Description: "surface tissu", Price: 12, Category: "accessoires", CreatedAt: now}
}

func TestList_NewestFirst(t *testing.T) {
	fake := newFakeProductStore()
	seed(fake)
	svc := &Service{Products: fake}

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "c", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
	assert.Equal(t, "a", products[2].ID)
}

func TestSearch(t *testing.T) {
	fake := newFakeProductStore()
	seed(fake)
	svc := &Service{Products: fake}
	ctx := context.Background()

	// Sous-chaîne insensible à la casse sur le titre
	results, err := svc.Search(ctx, "SOURIS", "")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Intersection terme + catégorie
	results, err = svc.Search(ctx, "souris", "informatique")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].ID)

	// Le terme matche aussi la description
	results, err = svc.Search(ctx, "tissu", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c", results[0].ID)

	// Catégorie seule
	results, err = svc.Search(ctx, "", "accessoires")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// Aucun résultat
	results, err = svc.Search(ctx, "introuvable", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCreate_Validation(t *testing.T) {
	svc := &Service{Products: newFakeProductStore()}
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Product{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, models.Product{Title: "x", Description: "y", Category: "z", Price: -1})
	assert.ErrorIs(t, err, ErrNegativePrice)

	p, err := svc.Create(ctx, models.Product{Title: "x", Description: "y", Category: "z", Price: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
}

func TestUpdate(t *testing.T) {
	fake := newFakeProductStore()
	seed(fake)
	svc := &Service{Products: fake}
	ctx := context.Background()

	newPrice := 79.0
	p, err := svc.Update(ctx, "a", models.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 79.0, p.Price)
	// Les autres champs sont inchangés
	assert.Equal(t, "Clavier mécanique", p.Title)

	negative := -5.0
	_, err = svc.Update(ctx, "a", models.ProductUpdate{Price: &negative})
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = svc.Update(ctx, "absent", models.ProductUpdate{Price: &newPrice})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	fake := newFakeProductStore()
	seed(fake)
	svc := &Service{Products: fake}
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "a"))
	_, err := svc.Get(ctx, "a")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "a"), store.ErrNotFound)
}
