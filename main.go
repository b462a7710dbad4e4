package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/config"
	"github.com/laibaafzal969/Bakery-BE/controllers"
	"github.com/laibaafzal969/Bakery-BE/initializers"
	"github.com/laibaafzal969/Bakery-BE/middlewares"
	"github.com/laibaafzal969/Bakery-BE/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		log.Fatal("Database connection failed: ", err)
	}

	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal("Database sync failed: ", err)
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middlewares.RequireAuth(cfg.JWTSecret)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(db, cfg.JWTSecret), requireAuth)
	routes.ProductRoutes(server, controllers.NewProductController(db), requireAuth)
	routes.OrderRoutes(server, controllers.NewOrderController(db), requireAuth)
	routes.ContactRoutes(server, controllers.NewContactController(db), requireAuth)

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
