package models

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string    `json:"title" gorm:"size:250"`
	Slug      string    `json:"slug" gorm:"size:250;index"`
	UserID    string    `json:"userId" gorm:"column:user_id"`
	User      User      `json:"author,omitempty" gorm:"foreignKey:UserID"`
	Body      string    `json:"body" gorm:"type:text"`
	Publish   time.Time `json:"publish" gorm:"index"`
	Status    string    `json:"status" gorm:"size:10;default:draft"`
	Tags      []Tag     `json:"tags,omitempty" gorm:"many2many:post_tags;"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

// BeforeCreate fills the publish timestamp and derives the slug from the
// title when they are not set. The (publish date, slug) pair must stay
// unique; a unique index on (slug, publish day) rejects duplicates.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.Publish.IsZero() {
		p.Publish = time.Now().UTC()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	return nil
}

// MarkPublished transitions a draft to published. There is no reverse
// transition: a published post stays published.
func (p *Post) MarkPublished() {
	if p.Status == PostStatusDraft {
		p.Status = PostStatusPublished
	}
}

// URLPath returns the canonical date-and-slug path of the post,
// e.g. /2026/08/28/my-first-post
func (p *Post) URLPath() string {
	d := p.Publish.UTC()
	return fmt.Sprintf("/%04d/%02d/%02d/%s", d.Year(), int(d.Month()), d.Day(), p.Slug)
}
