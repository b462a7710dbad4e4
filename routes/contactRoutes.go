package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/controllers"
)

func ContactRoutes(server *gin.Engine, contacts *controllers.ContactController, requireAuth gin.HandlerFunc) {
	api := server.Group("/api/contacts")
	{
		api.POST("", contacts.CreateContact)
		api.GET("", requireAuth, contacts.GetContacts)
	}
}
