package cart

import (
	"errors"

	"ecomm_back_end/internal/models"
)

var (
	// ErrInvalidQuantity : la quantité doit rester ≥ 1, la suppression passe par Remove
	ErrInvalidQuantity = errors.New("quantité invalide")
	// ErrLineNotFound : aucune ligne pour ce produit dans le panier
	ErrLineNotFound = errors.New("ligne de panier introuvable")
)

// Cart : agrégation (produit → ligne) du panier d'une session.
// Invariant : au plus une ligne par product_id.
type Cart struct {
	Lines []models.CartLine `json:"lines"`
}

// Add incrémente la quantité d'une ligne existante, sinon crée une ligne
// avec quantité 1. Le titre, le prix et l'image sont figés au moment de
// l'ajout : un changement ultérieur du catalogue ne touche pas la ligne.
func (c *Cart) Add(p models.Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, models.CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// SetQuantity remplace la quantité d'une ligne. La validation vit ici et
// non dans l'UI : n < 1 est refusé.
func (c *Cart) SetQuantity(productID string, n int) error {
	if n < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = n
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove supprime la ligne si présente, no-op sinon
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total retourne Σ(prix × quantité) sur toutes les lignes
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount retourne Σ(quantité), utilisé pour le badge panier
func (c *Cart) ItemCount() int {
	var count int
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty : panier sans ligne
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
