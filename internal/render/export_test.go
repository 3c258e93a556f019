package render

import "github.com/mickamy/ormdoc/internal/schema"

func Cardinality(rel schema.Relation) string { return cardinality(rel) }

func AttributeType(t string) string { return attributeType(t) }
