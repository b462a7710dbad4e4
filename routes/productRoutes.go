package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/controllers"
)

func ProductRoutes(server *gin.Engine, products *controllers.ProductController, requireAuth gin.HandlerFunc) {
	api := server.Group("/api/products")
	{
		api.POST("", requireAuth, products.CreateProduct)
		api.GET("", products.GetProducts)
		api.PUT("/:id", requireAuth, products.UpdateProduct)
		api.DELETE("/:id", requireAuth, products.DeleteProduct)
	}
}
