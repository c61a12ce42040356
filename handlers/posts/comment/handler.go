package comment

import (
	"inkwell-backend/db"
	"inkwell-backend/handlers/posts"
	"inkwell-backend/models"
	"inkwell-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateComment handles the comment form posted on a post's detail page.
// A valid form appends one active comment; an invalid one re-renders the
// page with field errors and persists nothing.
func CreateComment(c *gin.Context) {
	post, ok := posts.LookupByDateSlug(c)
	if !ok {
		return
	}

	var input models.CommentCreate
	if err := c.ShouldBind(&input); err != nil {
		posts.RenderDetail(c, post, nil, input, utils.FieldErrors(err))
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		Name:   input.Name,
		Email:  input.Email,
		Body:   input.Body,
		Active: true,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		utils.RenderServerError(c, err, "Error saving the comment")
		return
	}

	posts.RenderDetail(c, post, &comment, models.CommentCreate{}, nil)
}
