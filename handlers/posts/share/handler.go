package share

import (
	"fmt"
	"net/http"

	"inkwell-backend/db"
	"inkwell-backend/models"
	"inkwell-backend/utils"

	"github.com/gin-gonic/gin"
)

// ShareForm renders the empty share-by-email form for a published post.
func ShareForm(c *gin.Context) {
	post, ok := lookupPublished(c)
	if !ok {
		return
	}
	renderForm(c, post, models.SharePostCreate{}, map[string]string{})
}

// SendPost validates the share form and dispatches the recommendation
// email. Delivery failures surface as a 500; nothing is retried.
func SendPost(c *gin.Context) {
	post, ok := lookupPublished(c)
	if !ok {
		return
	}

	var input models.SharePostCreate
	if err := c.ShouldBind(&input); err != nil {
		renderForm(c, post, input, utils.FieldErrors(err))
		return
	}

	postURL := utils.AbsoluteURL(c, post.URLPath())
	subject := fmt.Sprintf("%s (%s) recommends you reading %q", input.Name, input.Email, post.Title)
	message := fmt.Sprintf("Read %q at %s\n\n%s's comments: %s", post.Title, postURL, input.Name, input.Comments)

	if err := utils.Mail.Send(subject, message, utils.MailFrom(), []string{input.To}); err != nil {
		utils.RenderServerError(c, err, "Error sending the share email")
		return
	}

	c.HTML(http.StatusOK, "blog/share", gin.H{
		"Post": post,
		"Sent": true,
	})
}

// lookupPublished resolves the post id carried in the first URL segment.
// That segment shares the detail route's :year parameter name, which gin
// requires for routes branching at the same position.
func lookupPublished(c *gin.Context) (models.Post, bool) {
	postID := c.Param("year")

	var post models.Post
	err := db.DB.Scopes(models.PublishedPosts).First(&post, "posts.id = ?", postID).Error
	if err != nil {
		utils.RenderNotFound(c, "Post not found")
		return models.Post{}, false
	}
	return post, true
}

func renderForm(c *gin.Context, post models.Post, form models.SharePostCreate, formErrors map[string]string) {
	c.HTML(http.StatusOK, "blog/share", gin.H{
		"Post":       post,
		"Sent":       false,
		"Form":       form,
		"FormErrors": formErrors,
	})
}
