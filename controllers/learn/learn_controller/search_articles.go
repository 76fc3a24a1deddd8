package learn_controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// SearchArticles godoc
// @Summary Full-text search over published articles
// @Description Searches article title, excerpt and body with Postgres websearch syntax ("terpenes -myrcene", quoted phrases).
// @Tags Learn
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.ApiResponse{data=[]models.ArticleSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /learn/articles/search [get]
func SearchArticles(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "q is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Raw pgx here: GORM has no useful surface for ts_rank ordering.
	rows, err := config.ContentDB.Query(ctx, `
		SELECT
			id,
			slug,
			title,
			excerpt,
			tags,
			published_at
		FROM articles
		WHERE published_at IS NOT NULL
			AND to_tsvector('english', title || ' ' || excerpt || ' ' || body)
				@@ websearch_to_tsquery('english', $1)
		ORDER BY ts_rank(
			to_tsvector('english', title || ' ' || excerpt || ' ' || body),
			websearch_to_tsquery('english', $1)
		) DESC
		LIMIT 20
	`, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search articles"))
		return
	}
	defer rows.Close()

	results := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var (
			s           models.ArticleSummary
			publishedAt *time.Time
		)
		if err := rows.Scan(&s.ID, &s.Slug, &s.Title, &s.Excerpt, &s.Tags, &publishedAt); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search articles"))
			return
		}
		s.PublishedAt = publishedAt
		results = append(results, s)
	}
	if rows.Err() != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search articles"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Articles searched", results))
}
