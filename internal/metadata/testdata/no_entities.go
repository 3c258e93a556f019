package testdata

type Status string

type Links struct {
	Users []User `rel:"has_many"`
}
