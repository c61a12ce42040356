package posts

import (
	"net/http"
	"strconv"
	"time"

	"inkwell-backend/cache"
	"inkwell-backend/db"
	"inkwell-backend/models"
	"inkwell-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	pageSize          = 3
	similarPostsLimit = 4
	sidebarPostCount  = 5
)

// ListPosts renders the paginated list of published posts, optionally
// restricted to a tag when mounted on the /tag/:tag_slug route.
func ListPosts(c *gin.Context) {
	query := db.DB.Model(&models.Post{}).Scopes(models.PublishedPosts)

	var tag *models.Tag
	if tagSlug := c.Param("tag_slug"); tagSlug != "" {
		var t models.Tag
		if err := db.DB.Where("slug = ?", tagSlug).First(&t).Error; err != nil {
			utils.RenderNotFound(c, "Tag not found")
			return
		}
		tag = &t
		query = query.
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", t.ID)
	}

	var page []models.Post
	pagination, err := utils.Paginate(query, "posts.publish DESC", c.Query("page"), pageSize, &page)
	if err != nil {
		utils.RenderServerError(c, err, "Error retrieving posts")
		return
	}

	ctx := sidebarContext()
	ctx["Posts"] = page
	ctx["Tag"] = tag
	ctx["Page"] = pagination
	c.HTML(http.StatusOK, "blog/list", ctx)
}

// PostDetail renders one published post with its active comments and up to
// four similar posts.
func PostDetail(c *gin.Context) {
	post, ok := LookupByDateSlug(c)
	if !ok {
		return
	}
	RenderDetail(c, post, nil, models.CommentCreate{}, nil)
}

// LookupByDateSlug resolves the /:year/:month/:day/:slug parameters to
// exactly one published post. Zero matches and multiple matches both render
// the 404 page and return false.
func LookupByDateSlug(c *gin.Context) (models.Post, bool) {
	year, errYear := strconv.Atoi(c.Param("year"))
	month, errMonth := strconv.Atoi(c.Param("month"))
	day, errDay := strconv.Atoi(c.Param("day"))
	slug := c.Param("slug")

	if errYear != nil || errMonth != nil || errDay != nil ||
		month < 1 || month > 12 || day < 1 || day > 31 {
		utils.RenderNotFound(c, "Post not found")
		return models.Post{}, false
	}

	// Slug uniqueness is scoped to a single publish date, so the half-open
	// day range plus the slug identifies at most one post.
	dayStart := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	nextDay := dayStart.AddDate(0, 0, 1)

	var matches []models.Post
	err := db.DB.Scopes(models.PublishedPosts).
		Where("posts.slug = ? AND posts.publish >= ? AND posts.publish < ?", slug, dayStart, nextDay).
		Limit(2).
		Find(&matches).Error
	if err != nil || len(matches) != 1 {
		utils.RenderNotFound(c, "Post not found")
		return models.Post{}, false
	}
	return matches[0], true
}

// RenderDetail loads the post's tags, active comments and similar posts and
// renders the detail page. The comment handler reuses it to re-render the
// page around a fresh or rejected comment form.
func RenderDetail(c *gin.Context, post models.Post, newComment *models.Comment, form models.CommentCreate, formErrors map[string]string) {
	var tags []models.Tag
	err := db.DB.
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", post.ID).
		Find(&tags).Error
	if err != nil {
		utils.RenderServerError(c, err, "Error retrieving tags")
		return
	}
	post.Tags = tags

	var comments []models.Comment
	err = db.DB.
		Where("post_id = ? AND active = ?", post.ID, true).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		utils.RenderServerError(c, err, "Error retrieving comments")
		return
	}

	similar, err := similarPosts(&post)
	if err != nil {
		utils.RenderServerError(c, err, "Error retrieving similar posts")
		return
	}

	if formErrors == nil {
		formErrors = map[string]string{}
	}
	c.HTML(http.StatusOK, "blog/detail", gin.H{
		"Post":         post,
		"Comments":     comments,
		"NewComment":   newComment,
		"Form":         form,
		"FormErrors":   formErrors,
		"SimilarPosts": similar,
	})
}

// similarPosts ranks published posts sharing at least one tag with post by
// shared-tag count, then recency, excluding the post itself.
func similarPosts(post *models.Post) ([]models.Post, error) {
	if len(post.Tags) == 0 {
		return nil, nil
	}

	tagIDs := make([]string, 0, len(post.Tags))
	for _, t := range post.Tags {
		tagIDs = append(tagIDs, t.ID)
	}

	var similar []models.Post
	err := db.DB.Model(&models.Post{}).
		Select("posts.*, COUNT(post_tags.tag_id) AS same_tags").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id IN ? AND posts.id <> ? AND posts.status = ?",
			tagIDs, post.ID, models.PostStatusPublished).
		Group("posts.id").
		Order("same_tags DESC, posts.publish DESC").
		Limit(similarPostsLimit).
		Find(&similar).Error
	return similar, err
}

func sidebarContext() gin.H {
	total, err := models.TotalPublished(db.DB)
	if err != nil {
		utils.LogError(err, "Error counting published posts")
	}

	latest, err := cache.LatestPosts(db.DB, sidebarPostCount)
	if err != nil {
		utils.LogError(err, "Error retrieving latest posts")
		latest = []models.Post{}
	}

	mostCommented, err := models.MostCommentedPosts(db.DB, sidebarPostCount)
	if err != nil {
		utils.LogError(err, "Error retrieving most commented posts")
		mostCommented = []models.Post{}
	}

	return gin.H{
		"TotalPosts":    total,
		"LatestPosts":   latest,
		"MostCommented": mostCommented,
	}
}
