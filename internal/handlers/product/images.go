package product

import (
	"log"
	"net/http"

	"ecomm_back_end/internal/cache"
	"ecomm_back_end/internal/handlers"
	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20 // 10 Mo

//
// 📤 POST /api/admin/products/:id/image — upload multipart vers MinIO
//
func UploadProductImage(c *gin.Context) {
	productID := c.Param("id")
	ctx := c.Request.Context()

	// Le produit doit exister avant de lui attacher une image
	if _, err := Catalog.Get(ctx, productID); err != nil {
		handlers.WriteError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier image requis (champ 'image')"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image trop volumineuse (10 Mo maximum)"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format non supporté (jpeg, png ou webp)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du fichier"})
		return
	}
	defer file.Close()

	objectName, err := services.UploadProductImage(ctx, productID, file, fileHeader.Size, contentType, fileHeader.Filename)
	if err != nil {
		log.Printf("❌ Erreur upload MinIO: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'upload de l'image"})
		return
	}

	imageURL, err := services.PresignedImageURL(ctx, objectName)
	if err != nil {
		log.Printf("❌ Erreur URL signée MinIO: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération de l'URL de l'image"})
		return
	}

	// La fiche produit référence la nouvelle image
	if _, err := Catalog.Update(ctx, productID, models.ProductUpdate{Image: &imageURL}); err != nil {
		handlers.WriteError(c, err)
		return
	}

	cache.InvalidateProducts(ctx)
	log.Printf("🪣 Image %s uploadée pour le produit %s", objectName, productID)

	c.JSON(http.StatusOK, gin.H{
		"object": objectName,
		"url":    imageURL,
	})
}
