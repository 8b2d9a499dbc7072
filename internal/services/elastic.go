package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"

	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

//
// --- INDEXATION DANS ELASTICSEARCH ---
//
// L'index products est maintenu à chaque écriture du catalogue. La recherche
// de la boutique filtre en mémoire ; l'index existe pour sortir de ce plafond
// sans migration de données.

// ESIndexer implémente catalog.Indexer
type ESIndexer struct{}

// IndexProduct indexe un produit dans Elasticsearch
func (ESIndexer) IndexProduct(p models.Product) {
	if database.Elastic == nil {
		log.Println("⚠️ Elastic non initialisé, impossible d'indexer:", p.Title)
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      "products",
		DocumentID: p.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Title, res.String())
	} else {
		log.Printf("✅ Produit indexé dans Elasticsearch: %s", p.Title)
	}
}

// RemoveProduct retire un produit de l'index
func (ESIndexer) RemoveProduct(productID string) {
	if database.Elastic == nil {
		return
	}

	res, err := database.Elastic.Delete("products", productID)
	if err != nil {
		log.Println("❌ Erreur suppression Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", productID, res.String())
	}
}
