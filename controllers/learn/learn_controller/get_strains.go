package learn_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// GetStrains godoc
// @Summary List strain knowledge-base entries
// @Description Returns strain entries, optionally filtered by strain type.
// @Tags Learn
// @Produce json
// @Param type query string false "Strain type (Indica | Sativa | Hybrid | Indica leaning | Sativa leaning)"
// @Success 200 {object} models.ApiResponse{data=[]models.Strain}
// @Failure 500 {object} models.ApiResponse
// @Router /learn/strains [get]
func GetStrains(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.ContentGorm.WithContext(ctx).Order("name ASC")
	if strainType := c.Query("type"); strainType != "" {
		query = query.Where("type = ?", strainType)
	}

	strains := make([]models.Strain, 0)
	if err := query.Find(&strains).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch strains"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Strains fetched", strains))
}
