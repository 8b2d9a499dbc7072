package product

import "ecomm_back_end/internal/catalog"

// Dépendances injectées au démarrage (cmd/server) ou par les tests
var Catalog *catalog.Service

func Init(cat *catalog.Service) {
	Catalog = cat
}
