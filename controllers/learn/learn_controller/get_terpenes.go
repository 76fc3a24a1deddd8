package learn_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/catalog"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/services"
)

// GetTerpenes godoc
// @Summary List terpene knowledge-base entries
// @Tags Learn
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Terpene}
// @Failure 500 {object} models.ApiResponse
// @Router /learn/terpenes [get]
func GetTerpenes(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	terpenes := make([]models.Terpene, 0)
	if err := config.ContentGorm.WithContext(ctx).Order("name ASC").Find(&terpenes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch terpenes"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Terpenes fetched", terpenes))
}

type terpeneDetail struct {
	models.Terpene
	RelatedProducts []models.Product `json:"related_products,omitempty"`
}

// GetTerpeneBySlug godoc
// @Summary Get a terpene entry with related products
// @Tags Learn
// @Produce json
// @Param slug path string true "Terpene slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /learn/terpenes/{slug} [get]
func GetTerpeneBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var terpene models.Terpene
	err := config.ContentGorm.WithContext(ctx).Where("slug = ?", c.Param("slug")).First(&terpene).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Terpene not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch terpene"))
		return
	}

	detail := terpeneDetail{Terpene: terpene}

	if products, err := services.Dispense().ListProducts(c.Request.Context(), services.ProductQuery{}); err != nil {
		log.Printf("WARN related products unavailable for terpene %s: %v", terpene.Slug, err)
	} else {
		related := catalog.ApplyFilters(products, models.FacetedFilters{Terpenes: []string{terpene.Name}})
		if len(related) > 8 {
			related = related[:8]
		}
		detail.RelatedProducts = related
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Terpene fetched", detail))
}
