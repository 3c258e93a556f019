// Package schema defines the documentation model shared by the extractors,
// the synthesis layer and the renderer.
package schema

// DefaultNamespace is assigned to classes that carry no classifying tag.
const DefaultNamespace = "Default"

// RelationType is the cardinality of a relation edge.
type RelationType string

const (
	OneToOne   RelationType = "one-to-one"
	OneToMany  RelationType = "one-to-many"
	ManyToOne  RelationType = "many-to-one"
	ManyToMany RelationType = "many-to-many"
)

// Column is one column of a table.
type Column struct {
	Type         string `yaml:"type" json:"type"`
	Name         string `yaml:"name" json:"name"`
	IsPrimary    bool   `yaml:"primary,omitempty" json:"isPrimary"`
	IsForeignKey bool   `yaml:"foreign_key,omitempty" json:"isForeignKey"`
}

// Relation is a directed edge from Source to Target.
// A non-empty JoinTableName means Target is the join table backing a
// many-to-many association.
type Relation struct {
	RelationType            RelationType `yaml:"type" json:"relationType"`
	PropertyPath            string       `yaml:"property" json:"propertyPath"`
	IsOwning                bool         `yaml:"owning,omitempty" json:"isOwning"`
	Nullable                bool         `yaml:"nullable,omitempty" json:"nullable"`
	InverseSidePropertyPath string       `yaml:"inverse_property,omitempty" json:"inverseSidePropertyPath,omitempty"`
	Source                  string       `yaml:"source" json:"source"`
	JoinTableName           string       `yaml:"join_table,omitempty" json:"joinTableName,omitempty"`
	Target                  string       `yaml:"target" json:"target"`
}

// Table is the structural metadata of one entity. Name is the key used to
// pair it with its ClassDoc.
type Table struct {
	Name      string     `yaml:"name" json:"name"`
	Columns   []Column   `yaml:"columns" json:"columns"`
	Relations []Relation `yaml:"relations,omitempty" json:"relations"`
}

// PropertyDoc documents one field of an entity.
type PropertyDoc struct {
	PropertyName   string   `yaml:"name" json:"propertyName"`
	Docs           []string `yaml:"docs,omitempty" json:"docs"`
	HasMinitemsTag bool     `yaml:"minitems,omitempty" json:"hasMinitemsTag"`
}

// ClassDoc is the annotation metadata of one entity.
type ClassDoc struct {
	ClassName     string        `yaml:"name" json:"className"`
	Docs          []string      `yaml:"docs,omitempty" json:"docs"`
	NamespaceTags []string      `yaml:"namespaces,omitempty" json:"namespaceTags"`
	ErdTags       []string      `yaml:"erd,omitempty" json:"erdTags"`
	DescribeTags  []string      `yaml:"describe,omitempty" json:"describeTags"`
	HasHiddenTag  bool          `yaml:"hidden,omitempty" json:"hasHiddenTag"`
	Properties    []PropertyDoc `yaml:"properties,omitempty" json:"properties"`
}

// Normalize places an unclassified class in the default namespace.
// A class is unclassified when it has no namespace, erd or describe tag and
// is not hidden.
func (d *ClassDoc) Normalize() {
	if len(d.NamespaceTags) == 0 &&
		len(d.ErdTags) == 0 &&
		len(d.DescribeTags) == 0 &&
		!d.HasHiddenTag {
		d.NamespaceTags = []string{DefaultNamespace}
	}
}

// Namespace is one documentation section: a diagram of Tables and the
// descriptions of ClassDocs.
type Namespace struct {
	NamespaceName string     `yaml:"name" json:"namespaceName"`
	Tables        []Table    `yaml:"tables" json:"tables"`
	ClassDocs     []ClassDoc `yaml:"classes" json:"classDocs"`
}
