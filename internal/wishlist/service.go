package wishlist

import (
	"context"
	"errors"
	"time"

	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"
)

var ErrUnauthenticated = errors.New("utilisateur non authentifié")

type Service struct {
	Wishlists store.WishlistStore
	Products  store.ProductStore
}

// Toggle lit la présence puis écrit l'inverse, et retourne le nouvel état.
// Lecture-puis-écriture non atomique : deux sessions du même compte peuvent
// se croiser, au pire un favori en trop ou en moins.
func (s *Service) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}

	present, err := s.Wishlists.Contains(ctx, userID, productID)
	if err != nil {
		return false, err
	}

	if present {
		if err := s.Wishlists.Remove(ctx, userID, productID); err != nil {
			return true, err
		}
		return false, nil
	}

	// Le produit doit exister avant d'entrer en wishlist
	if _, err := s.Products.Get(ctx, productID); err != nil {
		return false, err
	}

	err = s.Wishlists.Add(ctx, models.WishlistEntry{
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Contains : état de présence pour une carte produit
func (s *Service) Contains(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}
	return s.Wishlists.Contains(ctx, userID, productID)
}

// List retourne la wishlist enrichie des fiches produits ; les produits
// supprimés du catalogue depuis l'ajout sont ignorés
func (s *Service) List(ctx context.Context, userID string) (*models.Wishlist, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	entries, err := s.Wishlists.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		p, err := s.Products.Get(ctx, e.ProductID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}

	return &models.Wishlist{UserID: userID, Items: items}, nil
}

// DeleteForUser purge la wishlist lors de la suppression d'un compte
func (s *Service) DeleteForUser(ctx context.Context, userID string) error {
	return s.Wishlists.DeleteByUser(ctx, userID)
}
