package testdata

type Article struct {
	ID    int64
	Title string
	Tags  []Tag `rel:"many_to_many,join_table:article_tags,foreign_key:article_id,references:tag_id"`
}

type Tag struct {
	ID       int64
	Name     string
	Articles []Article `rel:"many_to_many"`
}
