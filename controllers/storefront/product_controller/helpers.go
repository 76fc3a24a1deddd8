package product_controller

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/catalog"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return page, limit
}

func parseFacetedFilters(c *gin.Context) models.FacetedFilters {
	return models.FacetedFilters{
		Categories: c.QueryArray("category"),
		Brands:     c.QueryArray("brand"),
		Strains:    c.QueryArray("strain"),
		Terpenes:   c.QueryArray("terpene"),
		Weights:    c.QueryArray("weight"),
		Effects:    c.QueryArray("effect"),
		SaleOnly:   c.Query("saleOnly") == "true" || c.Query("saleOnly") == "1",
	}
}

// applyNumericFilters narrows on dimensions outside the faceted contract:
// resolved price bounds and a THC ceiling. A product with an unparseable
// THC value is kept. The engine refuses to guess, and excluding it would
// silently hide valid inventory.
func applyNumericFilters(products []models.Product, minPrice, maxPrice, maxTHC *float64) []models.Product {
	if minPrice == nil && maxPrice == nil && maxTHC == nil {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		price := catalog.FinalPrice(p)
		if minPrice != nil && price < *minPrice {
			continue
		}
		if maxPrice != nil && price > *maxPrice {
			continue
		}
		if maxTHC != nil {
			if thc := catalog.THCTotal(p, true); thc != nil && *thc > *maxTHC {
				continue
			}
		}
		out = append(out, *p)
	}
	return out
}

func parseFloatQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// sortProducts orders the filtered list in place. Price sorting uses the
// resolved final price so sale items land where shoppers expect.
func sortProducts(products []models.Product, sortBy, sortOrder string) {
	asc := strings.EqualFold(sortOrder, "asc")

	switch sortBy {
	case "price":
		sort.SliceStable(products, func(i, j int) bool {
			pi, pj := catalog.FinalPrice(&products[i]), catalog.FinalPrice(&products[j])
			if asc {
				return pi < pj
			}
			return pi > pj
		})
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			ni, nj := strings.ToLower(products[i].Name), strings.ToLower(products[j].Name)
			if asc {
				return ni < nj
			}
			return ni > nj
		})
	case "thc":
		sort.SliceStable(products, func(i, j int) bool {
			ti, tj := catalog.THCTotal(&products[i], true), catalog.THCTotal(&products[j], true)
			// Unparseable THC sorts last either direction.
			if ti == nil {
				return false
			}
			if tj == nil {
				return true
			}
			if asc {
				return *ti < *tj
			}
			return *ti > *tj
		})
	}
}

func paginate(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
