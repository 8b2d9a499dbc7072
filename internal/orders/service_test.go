package orders

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

// fakeOrderStore : store.OrderStore en mémoire pour les tests
type fakeOrderStore struct {
	orders map[string]*models.Order
	seq    int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]*models.Order)}
}

func (f *fakeOrderStore) Create(_ context.Context, o *models.Order) error {
	f.seq++
	o.ID = "order-" + strconv.Itoa(f.seq)
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderStore) Get(_ context.Context, orderID string) (*models.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) All(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, o *models.Order, status string, cancelledAt *time.Time) error {
	stored, ok := f.orders[o.ID]
	if !ok {
		return store.ErrNotFound
	}
	stored.Status = status
	stored.CancelledAt = cancelledAt
	return nil
}

func (f *fakeOrderStore) DeleteByUser(_ context.Context, userID string) error {
	for id, o := range f.orders {
		if o.UserID == userID {
			delete(f.orders, id)
		}
	}
	return nil
}

func lignes() []models.CartLine {
	return []models.CartLine{
		{ProductID: "p1", Title: "Produit p1", Price: 8.50, Image: "p1.jpg", Quantity: 3},
		{ProductID: "p2", Title: "Produit p2", Price: 2.25, Image: "p2.jpg", Quantity: 1},
	}
}

func TestCheckout_Success(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake}

	order, err := svc.Checkout(context.Background(), "user-1", lignes(), "")
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 27.75, order.Total, 1e-9)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 2)
	assert.Equal(t, 3, order.Items[0].Quantity)

	// La commande est persistée
	stored, err := fake.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Total, stored.Total)
}

func TestCheckout_EmptyCart(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake}

	_, err := svc.Checkout(context.Background(), "user-1", nil, "")
	assert.ErrorIs(t, err, ErrEmptyCart)
	// Rien n'a été persisté
	assert.Empty(t, fake.orders)
}

func TestCheckout_Unauthenticated(t *testing.T) {
	svc := &Service{Orders: newFakeOrderStore()}

	_, err := svc.Checkout(context.Background(), "", lignes(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

type fakeIdemGuard struct {
	known map[string]string
}

func (f *fakeIdemGuard) Lookup(_ context.Context, key string) (string, bool, error) {
	id, ok := f.known[key]
	return id, ok, nil
}

func (f *fakeIdemGuard) Remember(_ context.Context, key, orderID string) error {
	f.known[key] = orderID
	return nil
}

func TestCheckout_IdempotencyKeyReturnsSameOrder(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake, Idem: &fakeIdemGuard{known: map[string]string{}}}

	first, err := svc.Checkout(context.Background(), "user-1", lignes(), "key-abc")
	require.NoError(t, err)

	second, err := svc.Checkout(context.Background(), "user-1", lignes(), "key-abc")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, fake.orders, 1)
}

func TestCancel(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake}

	order, err := svc.Checkout(context.Background(), "user-1", lignes(), "")
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), order.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// Deuxième annulation : échec, pas de no-op silencieux
	_, err = svc.Cancel(context.Background(), order.ID, "user-1")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_WrongOwner(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake}

	order, err := svc.Checkout(context.Background(), "user-1", lignes(), "")
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), order.ID, "user-2")
	assert.ErrorIs(t, err, ErrForbidden)

	// Le statut n'a pas bougé
	stored, err := fake.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestCancel_DeliveredIsImmutable(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake}

	order, err := svc.Checkout(context.Background(), "user-1", lignes(), "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), order.ID, "user-1")
	assert.ErrorIs(t, err, ErrImmutable)
}

func TestCancel_NotFound(t *testing.T) {
	svc := &Service{Orders: newFakeOrderStore()}

	_, err := svc.Cancel(context.Background(), "absent", "user-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListForUser_SortedNewestFirst(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake}

	now := time.Now().UTC()
	fake.orders["a"] = &models.Order{ID: "a", UserID: "user-1", CreatedAt: now.Add(-time.Hour)}
	fake.orders["b"] = &models.Order{ID: "b", UserID: "user-1", CreatedAt: now}
	fake.orders["c"] = &models.Order{ID: "c", UserID: "user-1"} // sans horodatage
	fake.orders["d"] = &models.Order{ID: "d", UserID: "user-2", CreatedAt: now}

	list, err := svc.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	// Les commandes sans date passent en dernier
	assert.Equal(t, "c", list[2].ID)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake}

	order, err := svc.Checkout(context.Background(), "user-1", lignes(), "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGet_Ownership(t *testing.T) {
	fake := newFakeOrderStore()
	svc := &Service{Orders: fake}

	order, err := svc.Checkout(context.Background(), "user-1", lignes(), "")
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), order.ID, "user-2")
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(context.Background(), order.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}
