package routes

import (
	"blog-backend/handlers/posts"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(rpc *gin.RouterGroup) {
	// Requêtes
	rpc.GET("/posts.listAll", posts.ListAll)
	rpc.POST("/posts.listAll", posts.ListAll)
	rpc.POST("/posts.listByCategory", posts.ListByCategory)
	rpc.POST("/posts.getById", posts.GetByID)
	rpc.POST("/posts.getBySlug", posts.GetBySlug)

	// Mutations
	rpc.POST("/posts.create", posts.Create)
	rpc.POST("/posts.update", posts.Update)
	rpc.POST("/posts.delete", posts.Delete)
}
