package routes

import (
	"blog-backend/handlers/categories"
	"blog-backend/handlers/posts"

	"github.com/gin-gonic/gin"
)

// FallbackRoutes expose les listes en JSON brut, sans enveloppe
func FallbackRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/categories", categories.PlainList)
	api.GET("/blogs", posts.PlainListByCategory)
	api.POST("/blogs", posts.PlainListByCategory)
}
