package routes

import (
	"net/http"
	"time"

	"inkwell-backend/templates"
	"inkwell-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {

	gin.DefaultWriter = utils.LogWriter()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.SetHTMLTemplate(templates.Load())
	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "blog/404", gin.H{
			"message": "Page not found",
		})
	})

	PostsRoutes(r)
	SearchRoutes(r)
	FeedRoutes(r)

	return r
}
