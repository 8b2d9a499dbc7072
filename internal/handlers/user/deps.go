package user

import (
	"ecomm_back_end/internal/catalog"
	"ecomm_back_end/internal/orders"
	"ecomm_back_end/internal/store"
	"ecomm_back_end/internal/wishlist"
)

// Dépendances injectées au démarrage (cmd/server) ou par les tests
var (
	Users     store.UserStore
	Orders    *orders.Service
	Wishlists *wishlist.Service
	Catalog   *catalog.Service
)

func Init(users store.UserStore, o *orders.Service, w *wishlist.Service, cat *catalog.Service) {
	Users = users
	Orders = o
	Wishlists = w
	Catalog = cat
}
