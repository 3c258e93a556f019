package testdata

type Duplicated struct {
	ID    int
	Name  string
	Label string `db:"name"`
}
