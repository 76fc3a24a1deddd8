package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/catalog"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/services"
)

// productDetail decorates the raw upstream record with the engine's
// derived facts so the UI never re-implements classification.
type productDetail struct {
	models.Product
	CategoryLabel string   `json:"categoryLabel,omitempty"`
	StrainType    string   `json:"strainTypeLabel,omitempty"`
	FinalPrice    float64  `json:"finalPrice"`
	OnSale        bool     `json:"onSale"`
	THC           *float64 `json:"thcTotal,omitempty"`
	CBD           *float64 `json:"cbdTotal,omitempty"`
}

// GetProductByID godoc
// @Summary Get a single storefront product
// @Description Retrieve one product by upstream id, decorated with derived classification, resolved price and lab totals.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 502 {object} models.ApiResponse "Upstream catalog unavailable"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := services.Dispense().GetProduct(c.Request.Context(), id)
	if err != nil {
		log.Printf("ERROR fetching product %s: %v", id, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil || product.ID == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	detail := productDetail{
		Product:       *product,
		CategoryLabel: catalog.CategoryLabel(product),
		StrainType:    catalog.StrainTypeOf(product),
		FinalPrice:    catalog.FinalPrice(product),
		OnSale:        catalog.IsOnSale(product),
		THC:           catalog.THCTotal(product, true),
		CBD:           catalog.CBDTotal(product),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
