package models

import (
	"gorm.io/gorm"
)

// PublishedPosts restricts a query to published posts. Every public read
// surface (list, detail, feed, sitemap, search index) goes through this
// scope; drafts never leave the database without it. Ordering is applied by
// the callers so the scope stays usable under COUNT.
func PublishedPosts(db *gorm.DB) *gorm.DB {
	return db.Where("posts.status = ?", PostStatusPublished)
}

// RecentFirst applies the default descending-publish ordering.
func RecentFirst(db *gorm.DB) *gorm.DB {
	return db.Order("posts.publish DESC")
}

// TotalPublished counts the published posts.
func TotalPublished(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Post{}).Scopes(PublishedPosts).Count(&total).Error
	return total, err
}

// LatestPosts returns the n most recently published posts.
func LatestPosts(db *gorm.DB, n int) ([]Post, error) {
	var posts []Post
	err := db.Model(&Post{}).Scopes(PublishedPosts, RecentFirst).Limit(n).Find(&posts).Error
	return posts, err
}

// MostCommentedPosts returns published posts ranked by comment count.
func MostCommentedPosts(db *gorm.DB, n int) ([]Post, error) {
	var posts []Post
	err := db.Model(&Post{}).
		Select("posts.*, COUNT(comments.id) AS total_comments").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Scopes(PublishedPosts).
		Group("posts.id").
		Order("total_comments DESC").
		Limit(n).
		Find(&posts).Error
	return posts, err
}
