package models

// CommentCreate is the comment form posted on a post's detail page.
type CommentCreate struct {
	Name  string `form:"name" binding:"required,max=80"`
	Email string `form:"email" binding:"required,email"`
	Body  string `form:"body" binding:"required"`
}

// SharePostCreate is the share-by-email form.
type SharePostCreate struct {
	Name     string `form:"name" binding:"required,max=25"`
	Email    string `form:"email" binding:"required,email"`
	To       string `form:"to" binding:"required,email"`
	Comments string `form:"comments"`
}

// SearchQuery is the free-text search form.
type SearchQuery struct {
	Query string `form:"query" binding:"required"`
}
