package models

// User is an account holder.
type User struct {
	ID   int
	Name string
}

func (User) TableName() string { return "accounts" }

type (
	// Group collects users.
	Group struct {
		ID int
	}

	Member struct {
		GroupID int
		UserID  int
	}
)

type unexported struct {
	ID int
}

type Status string
