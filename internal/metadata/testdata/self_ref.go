package testdata

import "database/sql"

type Category struct {
	ID       int
	ParentID *int
	Name     string
	Parent   *Category  `rel:"belongs_to"`
	Children []Category `rel:"has_many,foreign_key:parent_id"`
}

func (Category) TableName() string { return "category" }

type Account struct {
	ID      int
	Profile *Profile `rel:"has_one,foreign_key:account_id"`
}

type Profile struct {
	ID        int
	AccountID int
	Bio       sql.NullString
	Account   Account `rel:"belongs_to,foreign_key:account_id,unique"`
}
