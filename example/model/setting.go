package model

// Setting is an internal key/value pair.
// @hidden
type Setting struct {
	Key   string `db:"key,primaryKey"`
	Value string
}
