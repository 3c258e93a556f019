package spec

import (
	"testing"

	"github.com/mickamy/ormdoc/internal/schema"
)

func postEntity() *EntitySpec {
	return newEntitySpec(
		schema.Table{
			Name:    "posts",
			Columns: []schema.Column{{Type: "int8", Name: "id", IsPrimary: true}},
			Relations: []schema.Relation{
				{RelationType: schema.ManyToOne, PropertyPath: "Author", IsOwning: true, Source: "posts", Target: "users"},
				{RelationType: schema.OneToMany, PropertyPath: "Comments", Source: "posts", Target: "comments"},
			},
		},
		schema.ClassDoc{
			ClassName:     "posts",
			NamespaceTags: []string{"Blog", "Admin"},
			Properties: []schema.PropertyDoc{
				{PropertyName: "ID", Docs: []string{"identifier"}},
				{PropertyName: "Title", Docs: []string{"headline"}},
				{PropertyName: "Author", Docs: []string{"who wrote it"}},
				{PropertyName: "Comments", Docs: []string{"replies"}, HasMinitemsTag: true},
			},
		},
	)
}

func TestEntitySpecScopedViews(t *testing.T) {
	t.Parallel()

	e := postEntity()

	if _, ok := e.Table("Blog"); !ok {
		t.Error("Table(Blog) not found")
	}
	if _, ok := e.Doc("Admin"); !ok {
		t.Error("Doc(Admin) not found")
	}
	if _, ok := e.Table("Shop"); ok {
		t.Error("Table(Shop) found, want none")
	}
	if _, ok := e.Doc("Shop"); ok {
		t.Error("Doc(Shop) found, want none")
	}
	if got := e.NamespaceTags(); len(got) != 2 || got[0] != "Blog" || got[1] != "Admin" {
		t.Errorf("NamespaceTags = %v", got)
	}
}

func TestEntitySpecMinitemsRelations(t *testing.T) {
	t.Parallel()

	rels := postEntity().MinitemsRelations()
	if len(rels) != 1 {
		t.Fatalf("len = %d, want 1", len(rels))
	}
	if rels[0].PropertyPath != "Comments" || rels[0].Target != "comments" {
		t.Errorf("relation = %+v", rels[0])
	}
}

func TestEntitySpecApplyMinitemsRelation(t *testing.T) {
	t.Parallel()

	e := newEntitySpec(
		schema.Table{Name: "comments"},
		schema.ClassDoc{ClassName: "comments"},
	)

	edge := Edge{Source: "comments", Target: "posts"}
	e.ApplyMinitemsRelation(edge)
	e.ApplyMinitemsRelation(edge)

	if len(e.table.Relations) != 1 {
		t.Fatalf("len(Relations) = %d, want 1", len(e.table.Relations))
	}
	want := schema.Relation{
		RelationType: schema.OneToMany,
		PropertyPath: "posts",
		Nullable:     true,
		Source:       "comments",
		Target:       "posts",
	}
	if e.table.Relations[0] != want {
		t.Errorf("relation = %+v, want %+v", e.table.Relations[0], want)
	}
}

func TestEntitySpecApplyMinitemsRelationOtherSource(t *testing.T) {
	t.Parallel()

	e := postEntity()
	e.ApplyMinitemsRelation(Edge{Source: "comments", Target: "posts"})
	if len(e.table.Relations) != 2 {
		t.Errorf("len(Relations) = %d, want 2", len(e.table.Relations))
	}
}

func TestEntitySpecApplyMinitemsRelationExistingTarget(t *testing.T) {
	t.Parallel()

	e := postEntity()
	e.ApplyMinitemsRelation(Edge{Source: "posts", Target: "users"})
	if len(e.table.Relations) != 2 {
		t.Errorf("len(Relations) = %d, want 2", len(e.table.Relations))
	}
}

func TestEntitySpecRemoveRelationPropertyDocs(t *testing.T) {
	t.Parallel()

	e := postEntity()
	e.RemoveRelationPropertyDocs()

	var names []string
	for _, p := range e.doc.Properties {
		names = append(names, p.PropertyName)
	}
	if len(names) != 2 || names[0] != "ID" || names[1] != "Title" {
		t.Errorf("properties = %v, want [ID Title]", names)
	}
}

func TestNewEntitySpecDoesNotAlias(t *testing.T) {
	t.Parallel()

	table := schema.Table{Name: "comments", Relations: make([]schema.Relation, 0, 4)}
	e := newEntitySpec(table, schema.ClassDoc{ClassName: "comments"})
	e.ApplyMinitemsRelation(Edge{Source: "comments", Target: "posts"})

	if got := table.Relations[:1][0]; got.Target != "" {
		t.Errorf("input table was modified: %+v", got)
	}
}

func TestUnique(t *testing.T) {
	t.Parallel()

	got := unique([]string{"Blog", "Default", "Blog", "Shop", "Default"})
	want := []string{"Blog", "Default", "Shop"}
	if len(got) != len(want) {
		t.Fatalf("unique = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unique[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
