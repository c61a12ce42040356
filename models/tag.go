package models

import (
	gosimple "github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Tag struct {
	ID    string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name  string `json:"name" gorm:"size:100;uniqueIndex"`
	Slug  string `json:"slug" gorm:"size:100;uniqueIndex"`
	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags;"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = gosimple.Make(t.Name)
	}
	return nil
}
