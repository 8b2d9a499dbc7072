package scylla

import (
	"context"
	"time"

	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"

	"github.com/gocql/gocql"
)

// Wishlists implémente store.WishlistStore sur le keyspace users,
// table wishlists partitionnée par (user_id), clustering product_id.
type Wishlists struct{}

func (Wishlists) Contains(ctx context.Context, userID, productID string) (bool, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return false, store.Gateway("wishlists.session", err)
	}

	pid, err := gocql.ParseUUID(productID)
	if err != nil {
		return false, nil
	}

	var found gocql.UUID
	err = session.Query(`SELECT product_id FROM wishlists WHERE user_id = ? AND product_id = ?`,
		userID, pid).WithContext(ctx).Scan(&found)
	if err == gocql.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, store.Gateway("wishlists.contains", err)
	}
	return true, nil
}

func (Wishlists) Add(ctx context.Context, e models.WishlistEntry) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return store.Gateway("wishlists.session", err)
	}

	pid, err := gocql.ParseUUID(e.ProductID)
	if err != nil {
		return store.ErrNotFound
	}

	err = session.Query(`INSERT INTO wishlists (user_id, product_id, added_at) VALUES (?, ?, ?)`,
		e.UserID, pid, e.AddedAt).WithContext(ctx).Exec()
	return store.Gateway("wishlists.add", err)
}

func (Wishlists) Remove(ctx context.Context, userID, productID string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return store.Gateway("wishlists.session", err)
	}

	pid, err := gocql.ParseUUID(productID)
	if err != nil {
		return store.ErrNotFound
	}

	err = session.Query(`DELETE FROM wishlists WHERE user_id = ? AND product_id = ?`,
		userID, pid).WithContext(ctx).Exec()
	return store.Gateway("wishlists.remove", err)
}

func (Wishlists) ListByUser(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, store.Gateway("wishlists.session", err)
	}

	iter := session.Query(`SELECT product_id, added_at FROM wishlists WHERE user_id = ?`, userID).
		WithContext(ctx).Iter()

	var entries []models.WishlistEntry
	var pid gocql.UUID
	var addedAt time.Time
	for iter.Scan(&pid, &addedAt) {
		entries = append(entries, models.WishlistEntry{
			UserID:    userID,
			ProductID: pid.String(),
			AddedAt:   addedAt,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, store.Gateway("wishlists.list", err)
	}
	return entries, nil
}

func (Wishlists) DeleteByUser(ctx context.Context, userID string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return store.Gateway("wishlists.session", err)
	}

	err = session.Query(`DELETE FROM wishlists WHERE user_id = ?`, userID).WithContext(ctx).Exec()
	return store.Gateway("wishlists.delete_by_user", err)
}
