package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/controllers"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController, requireAuth gin.HandlerFunc) {
	api := server.Group("/api/orders")
	{
		api.POST("", orders.CreateOrder)
		api.GET("", orders.GetOrders)
		api.PUT("/:id", requireAuth, orders.UpdateOrderStatus)
	}
}
