package models

// Post is a blog entry.
type Post struct {
	ID    int
	Title string
}

func (*Post) TableName() string { return "articles" }
