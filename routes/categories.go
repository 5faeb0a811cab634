package routes

import (
	"blog-backend/handlers/categories"

	"github.com/gin-gonic/gin"
)

func CategoriesRoutes(rpc *gin.RouterGroup) {
	// Requêtes
	rpc.GET("/categories.list", categories.List)
	rpc.POST("/categories.list", categories.List)
	rpc.POST("/categories.getById", categories.GetByID)
	rpc.POST("/categories.getBySlug", categories.GetBySlug)

	// Mutations
	rpc.POST("/categories.create", categories.Create)
	rpc.POST("/categories.update", categories.Update)
	rpc.POST("/categories.delete", categories.Delete)
}
