package learn_routes

import (
	"github.com/Leafline-Dispensary/leafline-storefront-backend/controllers/learn/learn_controller"
	"github.com/gin-gonic/gin"
)

// SetupLearnRoutes sets up the knowledge-base read routes
func SetupLearnRoutes(router *gin.RouterGroup) {
	learn := router.Group("/learn")
	{
		learn.GET("/strains", learn_controller.GetStrains)
		learn.GET("/strains/:slug", learn_controller.GetStrainBySlug)

		learn.GET("/terpenes", learn_controller.GetTerpenes)
		learn.GET("/terpenes/:slug", learn_controller.GetTerpeneBySlug)

		learn.GET("/articles", learn_controller.GetArticles)
		learn.GET("/articles/search", learn_controller.SearchArticles)
		learn.GET("/articles/:slug", learn_controller.GetArticleBySlug)
	}
}
