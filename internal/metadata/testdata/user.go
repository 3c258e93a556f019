package testdata

import "time"

type User struct {
	ID        int       `db:"id,primaryKey"`
	Name      string    `db:"name"`
	Email     *string   `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	Posts     []Post    `rel:"has_many,foreign_key:user_id"`
	internal  string    // unexported, no tag — skipped
}

type Post struct {
	ID     int    `db:"id,primaryKey"`
	UserID *int   `db:"user_id"`
	Title  string `db:"title"`
	Draft  string `db:"-"`
	User   *User  `rel:"belongs_to,foreign_key:user_id"`
}
