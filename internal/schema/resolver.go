package schema

// ColumnFact is the part of a column the resolver needs: the property it is
// mapped from and whether it accepts NULL.
type ColumnFact struct {
	PropertyPath string
	Nullable     bool
}

// RelationFact is a relation as reported by a structural source, before the
// join table indirection is resolved.
type RelationFact struct {
	RelationType            RelationType
	InverseEntityTableName  string
	PropertyPath            string
	InverseSidePropertyPath string
	IsOwning                bool
	JoinTableName           string

	// InverseRelation is the relation on the other side, when the
	// association is bidirectional.
	InverseRelation *RelationFact
}

// ResolveRelation derives the documented relation of the entity named
// source from a structural fact.
//
// A relation backed by a join table targets the join table itself: it is
// documented as an owning one-to-many edge towards the join rows, whichever
// side declared the join table.
func ResolveRelation(source string, columns []ColumnFact, fact RelationFact) Relation {
	nullable := false
	for _, c := range columns {
		if c.PropertyPath == fact.PropertyPath {
			nullable = c.Nullable
			break
		}
	}

	rel := Relation{
		RelationType:            fact.RelationType,
		PropertyPath:            fact.PropertyPath,
		IsOwning:                fact.IsOwning,
		Nullable:                nullable,
		InverseSidePropertyPath: fact.InverseSidePropertyPath,
		Source:                  source,
		Target:                  fact.InverseEntityTableName,
	}

	joinTable := fact.JoinTableName
	if fact.InverseRelation != nil && fact.InverseRelation.JoinTableName != "" {
		joinTable = fact.InverseRelation.JoinTableName
	}
	if joinTable != "" {
		rel.JoinTableName = joinTable
		rel.Target = joinTable
		rel.RelationType = OneToMany
		rel.IsOwning = true
	}
	return rel
}
