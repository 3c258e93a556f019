package testdata

import "time"

// User is a registered author.
// Users sign in with their email address.
//
// @namespace Blog
// @namespace Accounts
type User struct {
	// ID identifies the user.
	ID    int
	Email string // unique sign-in address
	Posts []Post `rel:"has_many"`

	password string
}

// Post is a blog entry.
// @namespace Blog
type Post struct {
	ID     int
	UserID int
	// Comments are the replies to the post.
	// @minitems
	Comments []Comment `rel:"has_many"`
	// Title and Body hold the content.
	Title, Body string
	PublishedAt *time.Time
}

//go:generate echo skipped
type Comment struct {
	ID     int
	PostID int
}

// AuditLog is shown in the diagram only.
// @erd Admin
type AuditLog struct {
	ID int
}

// Secret is not documented anywhere.
// @hidden
type Secret struct {
	ID int
}

// @describe Admin
// @erd
type Setting struct {
	Key string
}

func (Setting) TableName() string { return "app_settings" }
