package search_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/catalog"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/intent"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/services"
)

var router = intent.NewRouter(config.Stores())

// Search godoc
// @Summary Natural-language product search
// @Description Routes a free-text message to an intent and extracted filters. Shoppable intents attach a filtered product rail with facet counts; store questions attach store cards.
// @Tags Storefront - Search
// @Accept json
// @Produce json
// @Param request body models.SearchRequest true "Shopper message"
// @Success 200 {object} models.ApiResponse{data=models.SearchResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/search [post]
func Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "message is required"))
		return
	}

	result := router.Route(req.Message)
	resp := models.SearchResponse{IntentResult: result}

	switch result.Intent {
	case models.IntentStoreInfo:
		resp.Stores = storesForResult(result)

	case models.IntentProductShopping, models.IntentEducationWithProducts, models.IntentProductInfo:
		products, err := services.Dispense().ListProducts(c.Request.Context(), services.ProductQuery{})
		if err != nil {
			// The routing result is still useful without a rail; degrade
			// instead of failing the whole search.
			log.Printf("ERROR fetching products for search: %v", err)
			break
		}
		filtered := catalog.ApplyFilters(products, result.Extracted.Faceted())
		filtered = applyExtractedBounds(filtered, result.Extracted)
		counts := catalog.BuildFacetCounts(products)
		resp.Products = filtered
		resp.Counts = &counts
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search routed", resp))
}

func storesForResult(result models.IntentResult) []models.StoreLocation {
	all := config.Stores()
	if result.StoreIDGuess == "" {
		return all
	}
	for _, store := range all {
		if store.ID == result.StoreIDGuess {
			return []models.StoreLocation{store}
		}
	}
	return all
}

// applyExtractedBounds narrows on the extraction's numeric fields, which
// sit outside the faceted filter contract.
func applyExtractedBounds(products []models.Product, ex models.ExtractedFilters) []models.Product {
	if ex.MaxTHC == nil && ex.PriceMin == nil && ex.PriceMax == nil {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		if ex.MaxTHC != nil {
			if thc := catalog.THCTotal(p, true); thc != nil && *thc > *ex.MaxTHC {
				continue
			}
		}
		price := catalog.FinalPrice(p)
		if ex.PriceMin != nil && price < *ex.PriceMin {
			continue
		}
		if ex.PriceMax != nil && price > *ex.PriceMax {
			continue
		}
		out = append(out, *p)
	}
	return out
}
