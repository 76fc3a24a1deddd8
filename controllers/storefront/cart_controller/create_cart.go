package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/services"
)

// CreateCart godoc
// @Summary Create a cart and get a checkout URL
// @Description Creates an upstream cart for a pickup store and returns the hosted checkout redirect URL. No payment is handled here.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.CartRequest true "Cart contents"
// @Success 201 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/carts [post]
func CreateCart(c *gin.Context) {
	var req models.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "storeId and at least one item are required"))
		return
	}
	if !validStoreID(req.StoreID) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown store"))
		return
	}

	cart, err := services.Dispense().CreateCart(c.Request.Context(), req)
	if err != nil {
		log.Printf("ERROR creating cart: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to create cart"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Cart created", cart))
}

func validStoreID(id string) bool {
	for _, store := range config.Stores() {
		if store.ID == id {
			return true
		}
	}
	return false
}
