package main

import (
	"log"
	"os"

	"inkwell-backend/cache"
	"inkwell-backend/db"
	"inkwell-backend/routes"
	"inkwell-backend/search"
	"inkwell-backend/utils"

	"github.com/gin-gonic/gin"
)

func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()
	utils.InitMailer()

	if err := cache.InitRedis(); err != nil {
		log.Printf("Warning: Redis initialisation failed: %v", err)
		log.Println("Latest posts will be read from the database on every request.")
	}

	idx, err := search.Open(os.Getenv("SEARCH_INDEX_PATH"))
	if err != nil {
		log.Printf("Warning: search index initialisation failed: %v", err)
		log.Println("Full-text search will not be available.")
	} else {
		if err := idx.Rebuild(db.DB); err != nil {
			utils.LogError(err, "Error rebuilding the search index")
		}
		search.Default = idx
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
