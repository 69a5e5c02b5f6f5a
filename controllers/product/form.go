package productcontroller

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjune867/kriukesnack/models"
)

const productPublicPath = "/uploads/products"

func productUploadDir() string {
	base := os.Getenv("UPLOAD_DIR")
	if base == "" {
		base = "uploads"
	}
	return filepath.Join(base, "products")
}

// saveProductImage stores an uploaded product image and returns its public URL.
func saveProductImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}

	dir := productUploadDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", productPublicPath, filename), nil
}

// VariantInput is one element of the "variants" form field, a JSON array like
// [{"name":"100g","price":25000,"stock":40}].
type VariantInput struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

func parseVariants(raw string) ([]models.Variant, error) {
	var inputs []VariantInput
	if err := json.Unmarshal([]byte(raw), &inputs); err != nil {
		return nil, fmt.Errorf("invalid variants JSON: %w", err)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one variant is required")
	}
	variants := make([]models.Variant, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" {
			return nil, fmt.Errorf("variant name is required")
		}
		if in.Price < 0 {
			return nil, fmt.Errorf("variant price must not be negative")
		}
		if in.Stock < 0 {
			return nil, fmt.Errorf("variant stock must not be negative")
		}
		variants = append(variants, models.Variant{Name: in.Name, Price: in.Price, Stock: in.Stock})
	}
	return variants, nil
}
