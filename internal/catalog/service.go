package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"
)

var (
	ErrMissingFields = errors.New("titre, prix, catégorie et description sont obligatoires")
	ErrNegativePrice = errors.New("le prix doit être positif ou nul")
)

// Indexer maintient l'index de recherche externe. L'indexation est
// asynchrone et ses échecs sont seulement journalisés.
type Indexer interface {
	IndexProduct(p models.Product)
	RemoveProduct(productID string)
}

type Service struct {
	Products store.ProductStore
	Index    Indexer // optionnel
}

// List retourne tout le catalogue, trié par date de création décroissante
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.Products.All(ctx)
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(products)
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.Products.Get(ctx, id)
}

// Search filtre la liste matérialisée en mémoire : sous-chaîne insensible
// à la casse sur titre/description, intersectée avec l'égalité stricte de
// catégorie quand elle est fournie. Pas de recherche plein texte côté
// serveur sur ce chemin — plafond assumé tant que le catalogue reste petit.
func (s *Service) Search(ctx context.Context, term, category string) ([]models.Product, error) {
	products, err := s.Products.All(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	sortByCreatedAtDesc(filtered)
	return filtered, nil
}

// Create valide les champs requis à la frontière puis persiste ;
// l'identifiant est assigné par le store
func (s *Service) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	if p.Title == "" || p.Description == "" || p.Category == "" {
		return nil, ErrMissingFields
	}
	if p.Price < 0 {
		return nil, ErrNegativePrice
	}

	if err := s.Products.Create(ctx, &p); err != nil {
		return nil, err
	}

	if s.Index != nil {
		go s.Index.IndexProduct(p)
	}
	return &p, nil
}

func (s *Service) Update(ctx context.Context, id string, u models.ProductUpdate) (*models.Product, error) {
	if u.Price != nil && *u.Price < 0 {
		return nil, ErrNegativePrice
	}

	// Un UPDATE CQL est un upsert : on vérifie l'existence d'abord
	if _, err := s.Products.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.Products.Update(ctx, id, u); err != nil {
		return nil, err
	}

	updated, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Index != nil {
		go s.Index.IndexProduct(*updated)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Products.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Products.Delete(ctx, id); err != nil {
		return err
	}

	if s.Index != nil {
		go s.Index.RemoveProduct(id)
	}
	return nil
}

func sortByCreatedAtDesc(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
