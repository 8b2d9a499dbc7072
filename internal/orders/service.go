package orders

import (
	"context"
	"errors"
	"sort"
	"time"

	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"
)

var (
	ErrUnauthenticated  = errors.New("utilisateur non authentifié")
	ErrEmptyCart        = errors.New("panier vide")
	ErrForbidden        = errors.New("cette commande appartient à un autre utilisateur")
	ErrAlreadyCancelled = errors.New("commande déjà annulée")
	ErrImmutable        = errors.New("une commande livrée ne peut plus être annulée")
	ErrInvalidStatus    = errors.New("statut de commande inconnu")
)

// IdempotencyGuard protège le checkout contre la double soumission.
// Lookup retourne l'identifiant de commande déjà créé pour une clé,
// Remember associe la clé à une commande fraîchement créée.
type IdempotencyGuard interface {
	Lookup(ctx context.Context, key string) (orderID string, found bool, err error)
	Remember(ctx context.Context, key, orderID string) error
}

type Service struct {
	Orders store.OrderStore
	Idem   IdempotencyGuard // optionnel
}

// Checkout convertit les lignes du panier en commande persistée `pending`.
// Le total est recalculé côté serveur : le total fourni par le client est
// ignoré. Seuls id/titre/prix/quantité/image sont copiés dans le snapshot.
// En cas d'échec, l'appelant garde son panier intact pour réessayer.
func (s *Service) Checkout(ctx context.Context, userID string, lines []models.CartLine, idemKey string) (*models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Clé d'idempotence fournie → une commande déjà créée est retournée telle quelle
	if idemKey != "" && s.Idem != nil {
		if existingID, found, err := s.Idem.Lookup(ctx, idemKey); err == nil && found {
			return s.Orders.Get(ctx, existingID)
		}
	}

	var total float64
	items := make([]models.CartLine, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.CartLine{
			ProductID: l.ProductID,
			Title:     l.Title,
			Price:     l.Price,
			Image:     l.Image,
			Quantity:  l.Quantity,
		})
		total += l.Price * float64(l.Quantity)
	}

	order := &models.Order{
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if idemKey != "" && s.Idem != nil {
		// Échec toléré : la commande existe déjà, perdre la clé ne fait
		// que réexposer la fenêtre de double soumission
		_ = s.Idem.Remember(ctx, idemKey, order.ID)
	}

	return order, nil
}

// Cancel : seule transition de statut accessible à l'utilisateur.
// pending/processing → cancelled ; delivered et cancelled sont terminaux.
func (s *Service) Cancel(ctx context.Context, orderID, userID string) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	if order.Status == models.OrderStatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if order.Status == models.OrderStatusDelivered {
		return nil, ErrImmutable
	}

	now := time.Now().UTC()
	if err := s.Orders.UpdateStatus(ctx, order, models.OrderStatusCancelled, &now); err != nil {
		return nil, err
	}

	order.Status = models.OrderStatusCancelled
	order.CancelledAt = &now
	return order, nil
}

// ListForUser retourne l'historique trié par date de création décroissante,
// les commandes sans horodatage en dernier
func (s *Service) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	orders, err := s.Orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].CreatedAt.IsZero() {
			return false
		}
		if orders[j].CreatedAt.IsZero() {
			return true
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Get charge une commande avec contrôle de propriété
func (s *Service) Get(ctx context.Context, orderID, userID string) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	return order, nil
}

// All retourne toutes les commandes (surface admin)
func (s *Service) All(ctx context.Context) ([]models.Order, error) {
	orders, err := s.Orders.All(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].CreatedAt.IsZero() {
			return false
		}
		if orders[j].CreatedAt.IsZero() {
			return true
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// DeleteForUser purge l'historique lors de la suppression d'un compte
func (s *Service) DeleteForUser(ctx context.Context, userID string) error {
	return s.Orders.DeleteByUser(ctx, userID)
}

// UpdateStatus : transition administrative, seule l'appartenance du statut
// à l'ensemble connu est contrôlée
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var cancelledAt *time.Time
	if status == models.OrderStatusCancelled {
		now := time.Now().UTC()
		cancelledAt = &now
	}

	if err := s.Orders.UpdateStatus(ctx, order, status, cancelledAt); err != nil {
		return nil, err
	}

	order.Status = status
	order.CancelledAt = cancelledAt
	return order, nil
}
