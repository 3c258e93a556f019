package testdata

type Broken struct {
	ID    int
	Items []Item `rel:"has_few"`
}
