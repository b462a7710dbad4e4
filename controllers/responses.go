package controllers

import "github.com/gin-gonic/gin"

// Standard response messages
const (
	msgUserAlreadyExists  = "user with this email already exists"
	msgUserNotFound       = "User not found"
	msgInvalidCredentials = "Invalid credentials"
	msgProductNotFound    = "Product not found"
	msgOrderNotFound      = "Order not found"
	msgProductDeleted     = "Product deleted"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}
