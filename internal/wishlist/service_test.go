package wishlist

import (
	"context"
	"testing"

	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWishlistStore struct {
	entries map[string]map[string]models.WishlistEntry // user → product → entrée
}

func newFakeWishlistStore() *fakeWishlistStore {
	return &fakeWishlistStore{entries: make(map[string]map[string]models.WishlistEntry)}
}

func (f *fakeWishlistStore) Contains(_ context.Context, userID, productID string) (bool, error) {
	_, ok := f.entries[userID][productID]
	return ok, nil
}

func (f *fakeWishlistStore) Add(_ context.Context, e models.WishlistEntry) error {
	if f.entries[e.UserID] == nil {
		f.entries[e.UserID] = make(map[string]models.WishlistEntry)
	}
	f.entries[e.UserID][e.ProductID] = e
	return nil
}

func (f *fakeWishlistStore) Remove(_ context.Context, userID, productID string) error {
	delete(f.entries[userID], productID)
	return nil
}

func (f *fakeWishlistStore) ListByUser(_ context.Context, userID string) ([]models.WishlistEntry, error) {
	var out []models.WishlistEntry
	for _, e := range f.entries[userID] {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeWishlistStore) DeleteByUser(_ context.Context, userID string) error {
	delete(f.entries, userID)
	return nil
}

type fakeProductStore struct {
	products map[string]models.Product
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
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, _ string, _ models.ProductUpdate) error {
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func newService() (*Service, *fakeWishlistStore, *fakeProductStore) {
	ws := newFakeWishlistStore()
	ps := &fakeProductStore{products: map[string]models.Product{
		"p1": {ID: "p1", Title: "Produit p1", Price: 10},
		"p2": {ID: "p2", Title: "Produit p2", Price: 5},
	}}
	return &Service{Wishlists: ws, Products: ps}, ws, ps
}

func TestToggle_AddThenRemove(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	present, err := svc.Toggle(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.True(t, present)

	present, err = svc.Contains(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.True(t, present)

	// Deuxième toggle : retrait, aucun résidu
	present, err = svc.Toggle(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.False(t, present)

	present, err = svc.Contains(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestToggle_UnknownProduct(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Toggle(context.Background(), "user-1", "absent")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestToggle_Unauthenticated(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Toggle(context.Background(), "", "p1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestList_EnrichedWithProducts(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user-1", "p1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "user-1", "p2")
	require.NoError(t, err)

	w, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", w.UserID)
	assert.Len(t, w.Items, 2)
}

func TestList_SkipsDeletedProducts(t *testing.T) {
	svc, _, ps := newService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user-1", "p1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "user-1", "p2")
	require.NoError(t, err)

	// p1 disparaît du catalogue après l'ajout
	delete(ps.products, "p1")

	w, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, w.Items, 1)
	assert.Equal(t, "p2", w.Items[0].ID)
}

func TestDeleteForUser(t *testing.T) {
	svc, ws, _ := newService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user-1", "p1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteForUser(ctx, "user-1"))
	assert.Empty(t, ws.entries["user-1"])
}
