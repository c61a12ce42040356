package models

import (
	"time"
)

// User is only referenced as the post author; identity and authentication
// live in a separate service.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserName  string    `json:"userName" gorm:"column:user_name;uniqueIndex"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
