package models

type Ignored struct {
	ID int
}
