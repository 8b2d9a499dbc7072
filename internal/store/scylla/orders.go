package scylla

import (
	"context"
	"encoding/json"
	"time"

	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"

	"github.com/gocql/gocql"
)

// Orders implémente store.OrderStore sur le keyspace orders.
// orders est partitionné par order_id, orders_by_user par user_id pour
// l'historique ; les deux tables portent les mêmes colonnes.
type Orders struct{}

const orderColumns = `order_id, user_id, items_json, total, status, created_at, cancelled_at`

func scanOrder(q *gocql.Query) (*models.Order, error) {
	var (
		oid         gocql.UUID
		userID      string
		itemsJSON   string
		total       float64
		status      string
		createdAt   time.Time
		cancelledAt *time.Time
	)
	err := q.Scan(&oid, &userID, &itemsJSON, &total, &status, &createdAt, &cancelledAt)
	if err == gocql.ErrNotFound {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, store.Gateway("orders.scan", err)
	}

	o := models.Order{
		ID:          oid.String(),
		UserID:      userID,
		Total:       total,
		Status:      status,
		CreatedAt:   createdAt,
		CancelledAt: cancelledAt,
	}
	if itemsJSON != "" {
		if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
			return nil, store.Gateway("orders.items_decode", err)
		}
	}
	return &o, nil
}

func (Orders) Create(ctx context.Context, o *models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return store.Gateway("orders.session", err)
	}

	o.ID = gocql.TimeUUID().String()
	oid, _ := gocql.ParseUUID(o.ID)

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return store.Gateway("orders.items_encode", err)
	}

	if err := session.Query(`INSERT INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		oid, o.UserID, string(itemsJSON), o.Total, o.Status, o.CreatedAt, o.CancelledAt).
		WithContext(ctx).Exec(); err != nil {
		return store.Gateway("orders.create", err)
	}

	err = session.Query(`INSERT INTO orders_by_user (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		oid, o.UserID, string(itemsJSON), o.Total, o.Status, o.CreatedAt, o.CancelledAt).
		WithContext(ctx).Exec()
	return store.Gateway("orders.create_by_user", err)
}

func (Orders) Get(ctx context.Context, orderID string) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, store.Gateway("orders.session", err)
	}

	oid, err := gocql.ParseUUID(orderID)
	if err != nil {
		return nil, store.ErrNotFound
	}

	return scanOrder(session.Query(`SELECT `+orderColumns+` FROM orders WHERE order_id = ?`, oid).WithContext(ctx))
}

func (Orders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, store.Gateway("orders.session", err)
	}

	iter := session.Query(`SELECT `+orderColumns+` FROM orders_by_user WHERE user_id = ?`, userID).
		WithContext(ctx).Iter()
	return drainOrders(iter, "orders.list_by_user")
}

func (Orders) All(ctx context.Context) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, store.Gateway("orders.session", err)
	}

	iter := session.Query(`SELECT ` + orderColumns + ` FROM orders`).WithContext(ctx).Iter()
	return drainOrders(iter, "orders.all")
}

func drainOrders(iter *gocql.Iter, op string) ([]models.Order, error) {
	var orders []models.Order
	var (
		oid         gocql.UUID
		userID      string
		itemsJSON   string
		total       float64
		status      string
		createdAt   time.Time
		cancelledAt *time.Time
	)
	for iter.Scan(&oid, &userID, &itemsJSON, &total, &status, &createdAt, &cancelledAt) {
		o := models.Order{
			ID:          oid.String(),
			UserID:      userID,
			Total:       total,
			Status:      status,
			CreatedAt:   createdAt,
			CancelledAt: cancelledAt,
		}
		if itemsJSON != "" {
			_ = json.Unmarshal([]byte(itemsJSON), &o.Items)
		}
		orders = append(orders, o)
		cancelledAt = nil
	}
	if err := iter.Close(); err != nil {
		return nil, store.Gateway(op, err)
	}
	return orders, nil
}

func (Orders) UpdateStatus(ctx context.Context, o *models.Order, status string, cancelledAt *time.Time) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return store.Gateway("orders.session", err)
	}

	oid, err := gocql.ParseUUID(o.ID)
	if err != nil {
		return store.ErrNotFound
	}

	if err := session.Query(`UPDATE orders SET status = ?, cancelled_at = ? WHERE order_id = ?`,
		status, cancelledAt, oid).WithContext(ctx).Exec(); err != nil {
		return store.Gateway("orders.update_status", err)
	}

	err = session.Query(`UPDATE orders_by_user SET status = ?, cancelled_at = ? WHERE user_id = ? AND created_at = ? AND order_id = ?`,
		status, cancelledAt, o.UserID, o.CreatedAt, oid).WithContext(ctx).Exec()
	return store.Gateway("orders.update_status_by_user", err)
}

func (s Orders) DeleteByUser(ctx context.Context, userID string) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return store.Gateway("orders.session", err)
	}

	// Supprime chaque commande principale avant de vider la partition index
	iter := session.Query(`SELECT order_id FROM orders_by_user WHERE user_id = ?`, userID).
		WithContext(ctx).Iter()
	var oid gocql.UUID
	for iter.Scan(&oid) {
		if err := session.Query(`DELETE FROM orders WHERE order_id = ?`, oid).
			WithContext(ctx).Exec(); err != nil {
			iter.Close()
			return store.Gateway("orders.delete", err)
		}
	}
	if err := iter.Close(); err != nil {
		return store.Gateway("orders.delete_by_user", err)
	}

	err = session.Query(`DELETE FROM orders_by_user WHERE user_id = ?`, userID).
		WithContext(ctx).Exec()
	return store.Gateway("orders.delete_by_user", err)
}
