package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/catalog"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/services"
)

// GetProducts godoc
// @Summary Get storefront products with faceted filters
// @Description Retrieve the venue's products with optional category, brand, strain, terpene, weight, effect, sale, price and THC filters, sorted and paginated.
// @Tags Storefront - Products
// @Produce json
// @Param category query []string false "Category display names (repeatable)"
// @Param brand query []string false "Brand names (repeatable)"
// @Param strain query []string false "Strain types or names (repeatable)"
// @Param terpene query []string false "Terpene names (repeatable)"
// @Param weight query []string false "Formatted weights, e.g. 3.5g (repeatable)"
// @Param effect query []string false "Effect tags (repeatable)"
// @Param saleOnly query bool false "Only discounted products"
// @Param minPrice query number false "Minimum resolved price"
// @Param maxPrice query number false "Maximum resolved price"
// @Param maxThc query number false "Maximum THC percentage"
// @Param sortBy query string false "Sort field (price | name | thc)"
// @Param sortOrder query string false "Sort order (asc | desc)" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream catalog unavailable"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	filters := parseFacetedFilters(c)

	products, err := services.Dispense().ListProducts(c.Request.Context(), services.ProductQuery{})
	if err != nil {
		log.Printf("ERROR fetching products from Dispense: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	filtered := catalog.ApplyFilters(products, filters)
	filtered = applyNumericFilters(
		filtered,
		parseFloatQuery(c, "minPrice"),
		parseFloatQuery(c, "maxPrice"),
		parseFloatQuery(c, "maxThc"),
	)
	sortProducts(filtered, c.Query("sortBy"), c.DefaultQuery("sortOrder", "desc"))

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		paginate(filtered, page, limit),
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	))
}
