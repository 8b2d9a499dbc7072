package store

import (
	"context"
	"time"

	"ecomm_back_end/internal/models"
)

// Les services reçoivent ces interfaces par injection : les handlers ne parlent
// jamais directement à ScyllaDB, et les tests passent des implémentations mémoire.

type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	// Create assigne l'identifiant et la date de création sur p
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, u models.ProductUpdate) error
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, userID string, u models.ProfileUpdate) error
	Delete(ctx context.Context, userID, email string) error
}

type OrderStore interface {
	// Create assigne l'identifiant sur o
	Create(ctx context.Context, o *models.Order) error
	Get(ctx context.Context, orderID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	// UpdateStatus prend la commande chargée : la table orders_by_user est
	// partitionnée par user_id et doit être mise à jour en même temps
	UpdateStatus(ctx context.Context, o *models.Order, status string, cancelledAt *time.Time) error
	DeleteByUser(ctx context.Context, userID string) error
}

type WishlistStore interface {
	Contains(ctx context.Context, userID, productID string) (bool, error)
	Add(ctx context.Context, e models.WishlistEntry) error
	Remove(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string) ([]models.WishlistEntry, error)
	DeleteByUser(ctx context.Context, userID string) error
}
