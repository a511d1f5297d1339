package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("⚠️ product index warning: %v", err)
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Backend with MongoDB running")
	})

	api := r.Group("/api")
	{
		api.GET("/products", handlers.GetProducts(db))
		api.GET("/products/pagination-options", handlers.GetPaginationOptions(db))
		api.GET("/products/filters", handlers.GetFilterOptions(db))
		api.GET("/products/stats", handlers.GetProductStats(db))
		api.GET("/products/:id", handlers.GetProductByID(db))

		api.POST("/products", handlers.CreateProduct(db))
		api.POST("/products/bulk", handlers.BulkCreateProducts(db))
		api.PUT("/products/:id", handlers.UpdateProduct(db))
		api.DELETE("/products/:id", handlers.DeleteProduct(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
