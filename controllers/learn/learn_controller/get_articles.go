package learn_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// GetArticles godoc
// @Summary List published resource articles
// @Description Returns article summaries (no body), newest first, optionally filtered by tag.
// @Tags Learn
// @Produce json
// @Param tag query string false "Tag filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.ArticleSummary}
// @Failure 500 {object} models.ApiResponse
// @Router /learn/articles [get]
func GetArticles(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	page, limit := parseLearnPagination(c)

	query := config.ContentGorm.WithContext(ctx).
		Model(&models.Article{}).
		Where("published_at IS NOT NULL").
		Order("published_at DESC")
	if tag := c.Query("tag"); tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch articles"))
		return
	}

	var articles []models.Article
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch articles"))
		return
	}

	summaries := make([]models.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, models.ArticleSummary{
			ID:          a.ID,
			Slug:        a.Slug,
			Title:       a.Title,
			Excerpt:     a.Excerpt,
			Tags:        a.Tags,
			PublishedAt: a.PublishedAt,
		})
	}

	totalPages := (int(total) + limit - 1) / limit
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Articles fetched", summaries, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}

// GetArticleBySlug godoc
// @Summary Get a published article
// @Tags Learn
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.ApiResponse{data=models.Article}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /learn/articles/{slug} [get]
func GetArticleBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var article models.Article
	err := config.ContentGorm.WithContext(ctx).
		Where("slug = ? AND published_at IS NOT NULL", c.Param("slug")).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Article not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch article"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Article fetched", article))
}

func parseLearnPagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = 10
	if v, err := intQuery(c, "page"); err == nil && v > 0 {
		page = v
	}
	if v, err := intQuery(c, "limit"); err == nil && v > 0 && v <= 50 {
		limit = v
	}
	return page, limit
}

func intQuery(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Query(name))
}
