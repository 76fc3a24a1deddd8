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

type strainDetail struct {
	models.Strain
	RelatedProducts []models.Product `json:"related_products,omitempty"`
}

// GetStrainBySlug godoc
// @Summary Get a strain entry with related products
// @Description Returns one strain entry plus live catalog products matching it. The strain filter falls back to free-text lineage mentions, so loosely tagged inventory still surfaces.
// @Tags Learn
// @Produce json
// @Param slug path string true "Strain slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /learn/strains/{slug} [get]
func GetStrainBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var strain models.Strain
	err := config.ContentGorm.WithContext(ctx).Where("slug = ?", c.Param("slug")).First(&strain).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Strain not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch strain"))
		return
	}

	detail := strainDetail{Strain: strain}

	// A catalog hiccup should not take the content page down.
	if products, err := services.Dispense().ListProducts(c.Request.Context(), services.ProductQuery{}); err != nil {
		log.Printf("WARN related products unavailable for strain %s: %v", strain.Slug, err)
	} else {
		related := catalog.ApplyFilters(products, models.FacetedFilters{Strains: []string{strain.Name}})
		if len(related) > 8 {
			related = related[:8]
		}
		detail.RelatedProducts = related
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Strain fetched", detail))
}
