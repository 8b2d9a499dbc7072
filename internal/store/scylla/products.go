package scylla

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"

	"github.com/gocql/gocql"
)

// Products implémente store.ProductStore sur le keyspace products
type Products struct{}

const productColumns = `product_id, title, description, price, category, image_url, created_at`

func (Products) All(ctx context.Context) ([]models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, store.Gateway("products.session", err)
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).WithContext(ctx).Iter()

	var products []models.Product
	var (
		id        gocql.UUID
		title     string
		desc      string
		price     float64
		category  string
		imageURL  string
		createdAt time.Time
	)
	for iter.Scan(&id, &title, &desc, &price, &category, &imageURL, &createdAt) {
		products = append(products, models.Product{
			ID:          id.String(),
			Title:       title,
			Description: desc,
			Price:       price,
			Category:    category,
			Image:       imageURL,
			CreatedAt:   createdAt,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, store.Gateway("products.all", err)
	}
	return products, nil
}

func (Products) Get(ctx context.Context, id string) (*models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, store.Gateway("products.session", err)
	}

	pid, err := gocql.ParseUUID(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var p models.Product
	var createdAt time.Time
	err = session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, pid).
		WithContext(ctx).
		Scan(&pid, &p.Title, &p.Description, &p.Price, &p.Category, &p.Image, &createdAt)
	if err == gocql.ErrNotFound {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, store.Gateway("products.get", err)
	}

	p.ID = pid.String()
	p.CreatedAt = createdAt
	return &p, nil
}

func (Products) Create(ctx context.Context, p *models.Product) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return store.Gateway("products.session", err)
	}

	// L'identifiant est assigné par la couche de stockage
	p.ID = gocql.TimeUUID().String()
	p.CreatedAt = time.Now().UTC()

	pid, _ := gocql.ParseUUID(p.ID)
	err = session.Query(`INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		pid, p.Title, p.Description, p.Price, p.Category, p.Image, p.CreatedAt).
		WithContext(ctx).Exec()
	return store.Gateway("products.create", err)
}

func (Products) Update(ctx context.Context, id string, u models.ProductUpdate) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return store.Gateway("products.session", err)
	}

	pid, err := gocql.ParseUUID(id)
	if err != nil {
		return store.ErrNotFound
	}

	// Fusion partielle : seuls les champs fournis sont écrits
	var sets []string
	var args []interface{}
	if u.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *u.Title)
	}
	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *u.Price)
	}
	if u.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *u.Category)
	}
	if u.Image != nil {
		sets = append(sets, "image_url = ?")
		args = append(args, *u.Image)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, pid)

	query := fmt.Sprintf("UPDATE products SET %s WHERE product_id = ?", strings.Join(sets, ", "))
	err = session.Query(query, args...).WithContext(ctx).Exec()
	return store.Gateway("products.update", err)
}

func (Products) Delete(ctx context.Context, id string) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return store.Gateway("products.session", err)
	}

	pid, err := gocql.ParseUUID(id)
	if err != nil {
		return store.ErrNotFound
	}

	err = session.Query(`DELETE FROM products WHERE product_id = ?`, pid).WithContext(ctx).Exec()
	return store.Gateway("products.delete", err)
}
