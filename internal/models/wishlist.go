package models

import "time"

// WishlistEntry : présence d'un produit dans la wishlist, clé composite (user_id, product_id)
type WishlistEntry struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

type Wishlist struct {
	UserID string    `json:"user_id"`
	Items  []Product `json:"items"`
}
