package routes

import (
	"inkwell-backend/handlers/posts"
	"inkwell-backend/handlers/posts/comment"
	"inkwell-backend/handlers/posts/share"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	r.GET("/", posts.ListPosts)
	r.GET("/tag/:tag_slug", posts.ListPosts)

	r.GET("/:year/:month/:day/:slug", posts.PostDetail)
	r.POST("/:year/:month/:day/:slug", comment.CreateComment)

	// Same /{post_id}/share shape as the canonical post URLs; the first
	// segment must reuse the :year name because gin forbids two different
	// wildcard names at the same position.
	r.GET("/:year/share", share.ShareForm)
	r.POST("/:year/share", share.SendPost)
}
