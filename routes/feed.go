package routes

import (
	"inkwell-backend/handlers/feed"

	"github.com/gin-gonic/gin"
)

func FeedRoutes(r *gin.Engine) {
	r.GET("/feed", feed.LatestFeed)
	r.GET("/sitemap.xml", feed.Sitemap)
}
