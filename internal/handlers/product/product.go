package product

import (
	"log"
	"net/http"

	"ecomm_back_end/internal/cache"
	"ecomm_back_end/internal/handlers"
	"ecomm_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /api/products — liste complète, cache Redis 10 min
//
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := cache.GetProducts(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := Catalog.List(ctx)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	cache.SetProducts(ctx, products)

	c.JSON(http.StatusOK, products)
}

//
// 🟢 GET /api/products/:id
//
func GetProduct(c *gin.Context) {
	p, err := Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

//
// 🔒 POST /api/admin/products
//
func CreateProduct(c *gin.Context) {
	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	p, err := Catalog.Create(ctx, input)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	cache.InvalidateProducts(ctx)
	log.Printf("✅ Produit créé: %s (%s)", p.Title, p.ID)

	c.JSON(http.StatusCreated, p)
}

//
// 🔒 PUT /api/admin/products/:id
//
func UpdateProduct(c *gin.Context) {
	var input models.ProductUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	p, err := Catalog.Update(ctx, c.Param("id"), input)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	cache.InvalidateProducts(ctx)

	c.JSON(http.StatusOK, p)
}

//
// 🔒 DELETE /api/admin/products/:id
//
func DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	if err := Catalog.Delete(ctx, c.Param("id")); err != nil {
		handlers.WriteError(c, err)
		return
	}

	cache.InvalidateProducts(ctx)
	log.Printf("🗑️ Produit supprimé: %s", c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
