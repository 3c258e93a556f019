package spec

import (
	"slices"

	"github.com/mickamy/ormdoc/internal/schema"
)

// Unmatched lists the names that could not be paired. They are left out of
// every namespace.
type Unmatched struct {
	Tables []string // tables without a class doc
	Docs   []string // class docs without a table
}

// Container owns every paired entity and derives the namespaces from them.
// A Container is built for a single run and is not safe for concurrent use.
type Container struct {
	entities   []*EntitySpec
	namespaces []string
	unmatched  Unmatched
}

// NewContainer pairs tables and docs by name and runs, in order, minitems
// propagation, relation property doc removal and namespace discovery.
// Docs are normalized on pairing, so untagged classes land in the default
// namespace. The inputs are copied and never modified.
func NewContainer(tables []schema.Table, docs []schema.ClassDoc) *Container {
	c := &Container{}

	docMatched := make([]bool, len(docs))
	for _, table := range tables {
		matched := false
		for i, doc := range docs {
			if table.Name == doc.ClassName {
				c.entities = append(c.entities, newEntitySpec(table, doc))
				docMatched[i] = true
				matched = true
			}
		}
		if !matched {
			c.unmatched.Tables = append(c.unmatched.Tables, table.Name)
		}
	}
	for i, doc := range docs {
		if !docMatched[i] {
			c.unmatched.Docs = append(c.unmatched.Docs, doc.ClassName)
		}
	}

	c.propagateMinitemsRelations()
	c.removeRelationPropertyDocs()
	c.discoverNamespaces()
	return c
}

// Entities returns the paired entities in input order.
func (c *Container) Entities() []*EntitySpec {
	return slices.Clone(c.entities)
}

// NamespaceNames returns the discovered namespaces in first-seen order.
func (c *Container) NamespaceNames() []string {
	return slices.Clone(c.namespaces)
}

// Unmatched reports the tables and docs dropped during pairing.
func (c *Container) Unmatched() Unmatched {
	return Unmatched{
		Tables: slices.Clone(c.unmatched.Tables),
		Docs:   slices.Clone(c.unmatched.Docs),
	}
}

// Namespaces builds one Namespace per discovered namespace name. Relations
// are pruned to targets that are tables of the same namespace, so every
// diagram edge has both endpoints in the diagram.
func (c *Container) Namespaces() []schema.Namespace {
	namespaces := make([]schema.Namespace, 0, len(c.namespaces))
	for _, name := range c.namespaces {
		namespaces = append(namespaces, schema.Namespace{
			NamespaceName: name,
			Tables:        pruneRelations(c.tablesIn(name)),
			ClassDocs:     c.docsIn(name),
		})
	}
	return namespaces
}

// propagateMinitemsRelations collects every inverse edge first and applies
// them afterwards, so the result does not depend on entity order.
func (c *Container) propagateMinitemsRelations() {
	var inverse []Edge
	for _, e := range c.entities {
		for _, rel := range e.MinitemsRelations() {
			inverse = append(inverse, Edge{Source: rel.Target, Target: rel.Source})
		}
	}
	for _, edge := range inverse {
		for _, e := range c.entities {
			e.ApplyMinitemsRelation(edge)
		}
	}
}

func (c *Container) removeRelationPropertyDocs() {
	for _, e := range c.entities {
		e.RemoveRelationPropertyDocs()
	}
}

func (c *Container) discoverNamespaces() {
	var names []string
	for _, e := range c.entities {
		names = append(names, e.NamespaceTags()...)
	}
	c.namespaces = unique(names)
}

func (c *Container) tablesIn(namespace string) []schema.Table {
	var tables []schema.Table
	for _, e := range c.entities {
		if t, ok := e.Table(namespace); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

func (c *Container) docsIn(namespace string) []schema.ClassDoc {
	var docs []schema.ClassDoc
	for _, e := range c.entities {
		if d, ok := e.Doc(namespace); ok {
			docs = append(docs, d)
		}
	}
	return docs
}

func pruneRelations(tables []schema.Table) []schema.Table {
	names := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		names[t.Name] = struct{}{}
	}
	pruned := make([]schema.Table, len(tables))
	for i, t := range tables {
		rels := make([]schema.Relation, 0, len(t.Relations))
		for _, rel := range t.Relations {
			if _, ok := names[rel.Target]; ok {
				rels = append(rels, rel)
			}
		}
		t.Relations = rels
		pruned[i] = t
	}
	return pruned
}

// unique returns values without duplicates, keeping first-seen order.
func unique[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
