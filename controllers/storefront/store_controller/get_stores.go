package store_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// GetStores godoc
// @Summary Get store locations
// @Description Returns all dispensary locations with address, phone and hours.
// @Tags Storefront - Stores
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StoreLocation}
// @Router /store/locations [get]
func GetStores(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stores fetched", config.Stores()))
}
