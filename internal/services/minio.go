package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"time"

	"ecomm_back_end/internal/database"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadProductImage stocke une image sous products/<product_id>/ et
// retourne le nom d'objet
func UploadProductImage(ctx context.Context, productID string, r io.Reader, size int64, contentType, filename string) (string, error) {
	bucket := os.Getenv("MINIO_BUCKET")
	objectName := fmt.Sprintf("products/%s/%s%s", productID, uuid.NewString(), path.Ext(filename))

	_, err := database.MinIO.PutObject(ctx, bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return objectName, nil
}

// PresignedImageURL génère une URL GET signée valable 24h
func PresignedImageURL(ctx context.Context, objectName string) (string, error) {
	bucket := os.Getenv("MINIO_BUCKET")

	u, err := database.MinIO.PresignedGetObject(ctx, bucket, objectName, 24*time.Hour, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// RemoveUserObjects supprime tous les objets sous users/<user_id>/
// (suppression de compte)
func RemoveUserObjects(ctx context.Context, userID string) (int, error) {
	bucket := os.Getenv("MINIO_BUCKET")
	prefix := "users/" + userID + "/"

	objectsCh := database.MinIO.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	removed := 0
	for object := range objectsCh {
		if object.Err != nil {
			return removed, object.Err
		}
		if err := database.MinIO.RemoveObject(ctx, bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
