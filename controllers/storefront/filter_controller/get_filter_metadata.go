package filter_controller

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/catalog"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/services"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns facet options and per-option counts derived from the venue's full product list. Counts always come from the unfiltered list so the UI can grey out empty options.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 502 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	products, err := services.Dispense().ListProducts(c.Request.Context(), services.ProductQuery{})
	if err != nil {
		log.Printf("ERROR fetching products for filter metadata: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	// Options and counts scan the list independently, so build them
	// concurrently.
	metadata := models.FilterMetadata{Total: len(products)}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		metadata.Options = catalog.BuildFacetOptions(products)
	}()
	go func() {
		defer wg.Done()
		metadata.Counts = catalog.BuildFacetCounts(products)
	}()
	wg.Wait()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
