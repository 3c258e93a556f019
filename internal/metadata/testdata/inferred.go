package testdata

import "time"

type Inferred struct {
	ID        int       `db:",primaryKey"`
	Name      string    // no db tag — column inferred as "name"
	CreatedAt time.Time // no db tag — column inferred as "created_at"
	Nickname  string    `db:"nick,nullable"`
	Secret    string    `db:"-"` // explicitly skipped
	internal  string    // unexported — skipped
	Embedded            // embedded — skipped
}

type Embedded struct {
	Version int
}

// RelationsOnly has no column and is not an entity.
type RelationsOnly struct {
	Users []User `rel:"has_many"`
}
