package search

import (
	"net/http"

	"inkwell-backend/db"
	"inkwell-backend/models"
	searchindex "inkwell-backend/search"
	"inkwell-backend/utils"

	"github.com/gin-gonic/gin"
)

const maxResults = 20

// SearchPosts renders the search form, and when a query is present runs it
// against the full-text index. Without a query parameter the index is never
// contacted.
func SearchPosts(c *gin.Context) {
	rawQuery, present := c.GetQuery("query")
	if !present {
		c.HTML(http.StatusOK, "blog/search", gin.H{
			"Submitted":  false,
			"Query":      "",
			"FormErrors": map[string]string{},
		})
		return
	}

	var input models.SearchQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		c.HTML(http.StatusOK, "blog/search", gin.H{
			"Submitted":  false,
			"Query":      rawQuery,
			"FormErrors": utils.FieldErrors(err),
		})
		return
	}

	if searchindex.Default == nil {
		utils.RenderServerError(c, nil, "Search is not available")
		return
	}

	hits, total, err := searchindex.Default.Query(input.Query, maxResults)
	if err != nil {
		utils.RenderServerError(c, err, "Error querying the search index")
		return
	}

	results, err := loadRanked(hits)
	if err != nil {
		utils.RenderServerError(c, err, "Error retrieving search results")
		return
	}

	c.HTML(http.StatusOK, "blog/search", gin.H{
		"Submitted": true,
		"Query":     input.Query,
		"Results":   results,
		"Total":     total,
	})
}

// loadRanked fetches the matched posts and puts them back in index rank
// order. The published scope re-applies here, so a stale index entry can
// never resurface a draft.
func loadRanked(hits []searchindex.Hit) ([]models.Post, error) {
	if len(hits) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}

	var found []models.Post
	err := db.DB.Scopes(models.PublishedPosts).Where("posts.id IN ?", ids).Find(&found).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Post, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	results := make([]models.Post, 0, len(hits))
	for _, h := range hits {
		if p, ok := byID[h.ID]; ok {
			results = append(results, p)
		}
	}
	return results, nil
}
