package model

// Profile holds optional public details of a user.
// @namespace Accounts
type Profile struct {
	ID     int
	UserID int
	// Bio is shown on the author page.
	Bio  *string
	User *User `rel:"belongs_to,unique"`
}
