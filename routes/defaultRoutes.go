package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
