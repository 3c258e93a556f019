// Package spec merges structural tables and class documentation into
// namespaces.
package spec

import (
	"slices"

	"github.com/mickamy/ormdoc/internal/schema"
)

// Edge is a bare source → target pair between tables.
type Edge struct {
	Source string
	Target string
}

// EntitySpec pairs the table and the class documentation of one entity.
type EntitySpec struct {
	table *schema.Table
	doc   *schema.ClassDoc
}

func newEntitySpec(table schema.Table, doc schema.ClassDoc) *EntitySpec {
	table = cloneTable(table)
	doc = cloneDoc(doc)
	doc.Normalize()
	return &EntitySpec{table: &table, doc: &doc}
}

func cloneTable(t schema.Table) schema.Table {
	t.Columns = slices.Clone(t.Columns)
	t.Relations = slices.Clone(t.Relations)
	return t
}

func cloneDoc(d schema.ClassDoc) schema.ClassDoc {
	d.Docs = slices.Clone(d.Docs)
	d.NamespaceTags = slices.Clone(d.NamespaceTags)
	d.ErdTags = slices.Clone(d.ErdTags)
	d.DescribeTags = slices.Clone(d.DescribeTags)
	d.Properties = slices.Clone(d.Properties)
	for i := range d.Properties {
		d.Properties[i].Docs = slices.Clone(d.Properties[i].Docs)
	}
	return d
}

// Name returns the table name the entity was paired on.
func (e *EntitySpec) Name() string { return e.table.Name }

// NamespaceTags returns the namespaces the entity belongs to.
func (e *EntitySpec) NamespaceTags() []string {
	return slices.Clone(e.doc.NamespaceTags)
}

// Table returns a copy of the entity's table if it belongs to namespace.
func (e *EntitySpec) Table(namespace string) (schema.Table, bool) {
	if !slices.Contains(e.doc.NamespaceTags, namespace) {
		return schema.Table{}, false
	}
	return cloneTable(*e.table), true
}

// Doc returns a copy of the entity's class documentation if it belongs to
// namespace.
func (e *EntitySpec) Doc(namespace string) (schema.ClassDoc, bool) {
	if !slices.Contains(e.doc.NamespaceTags, namespace) {
		return schema.ClassDoc{}, false
	}
	return cloneDoc(*e.doc), true
}

// MinitemsRelations returns the relations whose property carries the
// minitems tag.
func (e *EntitySpec) MinitemsRelations() []schema.Relation {
	var rels []schema.Relation
	for _, rel := range e.table.Relations {
		for _, prop := range e.doc.Properties {
			if prop.HasMinitemsTag && prop.PropertyName == rel.PropertyPath {
				rels = append(rels, rel)
				break
			}
		}
	}
	return rels
}

// ApplyMinitemsRelation injects the reciprocal of a minitems relation when
// the entity is the edge's source and has no relation to its target yet.
// Applying the same edge again is a no-op.
func (e *EntitySpec) ApplyMinitemsRelation(edge Edge) {
	if e.table.Name != edge.Source {
		return
	}
	for _, rel := range e.table.Relations {
		if rel.Target == edge.Target {
			return
		}
	}
	e.table.Relations = append(e.table.Relations, schema.Relation{
		RelationType: schema.OneToMany,
		PropertyPath: edge.Target,
		IsOwning:     false,
		Nullable:     true,
		Source:       edge.Source,
		Target:       edge.Target,
	})
}

// RemoveRelationPropertyDocs drops property docs of relation fields; the
// diagram documents those.
func (e *EntitySpec) RemoveRelationPropertyDocs() {
	e.doc.Properties = slices.DeleteFunc(e.doc.Properties, func(p schema.PropertyDoc) bool {
		return slices.ContainsFunc(e.table.Relations, func(r schema.Relation) bool {
			return r.PropertyPath == p.PropertyName
		})
	})
}
