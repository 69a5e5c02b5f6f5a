package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

// ExportProductsToExcel writes the full catalog as an .xlsx download, one row
// per variant.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Preload("Variants").Preload("Discount").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ProductID", "Name", "Category", "VariantID", "Variant",
			"Price", "Stock", "Rating", "ReviewCount", "SoldCount",
			"DiscountCode", "ImageURL", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			discountCode := ""
			if p.Discount != nil {
				discountCode = p.Discount.Code
			}
			for _, v := range p.Variants {
				row := sheet.AddRow()
				row.AddCell().SetValue(p.ID)
				row.AddCell().SetValue(p.Name)
				row.AddCell().SetValue(p.Category.Name)
				row.AddCell().SetValue(v.ID)
				row.AddCell().SetValue(v.Name)
				row.AddCell().SetValue(v.Price)
				row.AddCell().SetValue(v.Stock)
				row.AddCell().SetValue(p.Rating)
				row.AddCell().SetValue(p.ReviewCount)
				row.AddCell().SetValue(p.SoldCount)
				row.AddCell().SetValue(discountCode)
				row.AddCell().SetValue(p.ImageURL)
				row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
