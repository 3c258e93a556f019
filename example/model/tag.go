package model

// Tag groups posts by topic.
// @namespace Blog
type Tag struct {
	ID   int
	Name string

	// @minitems
	Posts []Post `rel:"many_to_many,inverse:Tags"`
}

// PostTag links posts and tags.
// @namespace Blog
type PostTag struct {
	PostID int `db:"post_id,primaryKey"`
	TagID  int `db:"tag_id,primaryKey"`
}
