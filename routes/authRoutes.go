package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/controllers"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController, requireAuth gin.HandlerFunc) {
	users := server.Group("/api/users")
	{
		users.POST("/register", auth.Register)
		users.POST("/login", auth.Login)
		users.GET("", requireAuth, auth.ListUsers)
	}
}
