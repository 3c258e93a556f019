package model

import "time"

// Post is a blog entry.
// @namespace Blog
type Post struct {
	ID     int
	UserID int
	Title  string
	Body   string
	// PublishedAt is nil while the post is a draft.
	PublishedAt *time.Time

	User *User `rel:"belongs_to,foreign_key:user_id"`
	Tags []Tag `rel:"many_to_many,join_table:post_tags"`
}
