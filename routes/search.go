package routes

import (
	searchHandler "inkwell-backend/handlers/search"

	"github.com/gin-gonic/gin"
)

func SearchRoutes(r *gin.Engine) {
	r.GET("/search", searchHandler.SearchPosts)
}
