package store

import (
	"errors"
	"fmt"
)

// ErrNotFound : l'enregistrement référencé (produit, commande, utilisateur) n'existe pas
var ErrNotFound = errors.New("enregistrement introuvable")

// GatewayError enveloppe une panne de la couche de stockage (ScyllaDB, Redis).
// Aucune reprise automatique : l'erreur remonte telle quelle au handler.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("erreur passerelle %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Gateway construit une GatewayError, ou nil si err est nil
func Gateway(op string, err error) error {
	if err == nil {
		return nil
	}
	return &GatewayError{Op: op, Err: err}
}
