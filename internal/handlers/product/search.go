package product

import (
	"net/http"

	"ecomm_back_end/internal/handlers"

	"github.com/gin-gonic/gin"
)

//
// 🔍 GET /api/products/search?q=...&category=...
//
func SearchProducts(c *gin.Context) {
	term := c.Query("q")
	category := c.Query("category")

	products, err := Catalog.Search(c.Request.Context(), term, category)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    term,
		"category": category,
		"count":    len(products),
		"results":  products,
	})
}
