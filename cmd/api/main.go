package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"restaurant-api/config"
	"restaurant-api/database"
	"restaurant-api/middleware"
	"restaurant-api/routes"
)

func main() {
	config.LoadEnv()
	logger := config.NewLogger()

	database.ConnectMongo()
	database.InitCollections()
	defer database.Disconnect()
	logger.Info().Msg("Connected to MongoDB")

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.SetTrustedProxies(nil)
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	routes.RegisterRoutes(r)

	port := config.GetEnv("PORT", "8080")
	logger.Info().Str("port", port).Msg("Starting server")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
