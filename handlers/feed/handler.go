package feed

import (
	"encoding/xml"
	"net/http"
	"time"

	"inkwell-backend/cache"
	"inkwell-backend/db"
	"inkwell-backend/models"
	"inkwell-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
)

const (
	feedSize         = 5
	descriptionWords = 30
)

// LatestFeed serves the RSS feed of the five most recent published posts.
func LatestFeed(c *gin.Context) {
	posts, err := cache.LatestPosts(db.DB, feedSize)
	if err != nil {
		utils.RenderServerError(c, err, "Error retrieving posts for the feed")
		return
	}

	f := &feeds.Feed{
		Title:       "My blog",
		Link:        &feeds.Link{Href: utils.AbsoluteURL(c, "/")},
		Description: "New posts of my blog.",
		Created:     time.Now(),
	}
	for _, p := range posts {
		href := utils.AbsoluteURL(c, p.URLPath())
		f.Items = append(f.Items, &feeds.Item{
			Id:          href,
			Title:       p.Title,
			Link:        &feeds.Link{Href: href},
			Description: utils.TruncateWords(p.Body, descriptionWords),
			Created:     p.Publish,
		})
	}

	rss, err := f.ToRss()
	if err != nil {
		utils.RenderServerError(c, err, "Error rendering the feed")
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists every published post for crawlers, with the publish time as
// last modification.
func Sitemap(c *gin.Context) {
	var posts []models.Post
	if err := db.DB.Scopes(models.PublishedPosts, models.RecentFirst).Find(&posts).Error; err != nil {
		utils.RenderServerError(c, err, "Error retrieving posts for the sitemap")
		return
	}

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        utils.AbsoluteURL(c, p.URLPath()),
			LastMod:    p.Publish.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.9,
		})
	}

	payload, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		utils.RenderServerError(c, err, "Error rendering the sitemap")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), payload...))
}
