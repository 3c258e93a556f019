package model

import "time"

// User is a registered author.
// Users sign in with their email address.
//
// @namespace Blog
// @namespace Accounts
type User struct {
	// ID is the primary key.
	ID        int       `db:"id,primaryKey"`
	Name      string    `db:"name"` // display name
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`

	// Posts are the entries the user wrote.
	// @minitems
	Posts   []Post   `rel:"has_many"`
	Profile *Profile `rel:"has_one"`
}
