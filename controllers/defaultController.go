package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Bakery API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

USERS
- POST "/api/users/register" - Create user account
- POST "/api/users/login" - Access user account
- GET "/api/users" - List all users (requires token)

PRODUCTS
- POST "/api/products" - Create new product (requires token)
- GET "/api/products" - Get all products
- PUT "/api/products/:id" - Update product (requires token)
- DELETE "/api/products/:id" - Delete product (requires token)

ORDERS
- POST "/api/orders" - Create a new order
- GET "/api/orders" - Retrieve all orders with their products
- PUT "/api/orders/:id" - Update order status (requires token)

CONTACTS
- POST "/api/contacts" - Submit a contact message
- GET "/api/contacts" - List contact messages, newest first (requires token)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
