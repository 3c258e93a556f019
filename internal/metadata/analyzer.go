package metadata

import (
	"errors"
	"fmt"

	"github.com/mickamy/ormdoc/internal/dialect"
	"github.com/mickamy/ormdoc/internal/schema"
	"github.com/mickamy/ormdoc/internal/source"
)

// ErrNoEntities is returned when the sources declare no entity.
var ErrNoEntities = errors.New("no entities found")

// Analyze extracts one table per entity in set, plus one per join table
// that has no entity of its own. Column types are named by d.
func Analyze(set *source.Set, d dialect.Dialect) ([]schema.Table, error) {
	infos, err := Parse(set)
	if err != nil {
		return nil, fmt.Errorf("parse entities: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("%w in %d source files", ErrNoEntities, len(set.Files))
	}
	return newAnalyzer(infos, d, set.TableName).tables(), nil
}

type columnKey struct {
	table  string
	column string
}

type analyzer struct {
	infos       []*EntityInfo
	byName      map[string]*EntityInfo
	d           dialect.Dialect
	tableNameOf func(typeName string) string
	foreignKeys map[columnKey]bool
}

func newAnalyzer(infos []*EntityInfo, d dialect.Dialect, tableNameOf func(string) string) *analyzer {
	a := &analyzer{
		infos:       infos,
		byName:      make(map[string]*EntityInfo, len(infos)),
		d:           d,
		tableNameOf: tableNameOf,
		foreignKeys: make(map[columnKey]bool),
	}
	for _, info := range infos {
		a.byName[info.Name] = info
	}
	a.collectForeignKeys()
	return a
}

// collectForeignKeys marks every column a relation stores its key in.
// belongs_to keys live on the entity itself, has_one / has_many keys on the
// target, many_to_many keys on the join table.
func (a *analyzer) collectForeignKeys() {
	for _, info := range a.infos {
		for _, rel := range info.Relations {
			switch rel.Kind {
			case BelongsTo:
				a.foreignKeys[columnKey{info.TableName, rel.ForeignKey}] = true
			case HasOne, HasMany:
				a.foreignKeys[columnKey{a.targetTable(rel), rel.ForeignKey}] = true
			case ManyToMany:
				if rel.JoinTable != "" {
					a.foreignKeys[columnKey{rel.JoinTable, rel.ForeignKey}] = true
					a.foreignKeys[columnKey{rel.JoinTable, rel.References}] = true
				}
			}
		}
	}
}

func (a *analyzer) tables() []schema.Table {
	tables := make([]schema.Table, 0, len(a.infos))
	known := make(map[string]bool, len(a.infos))
	for _, info := range a.infos {
		known[info.TableName] = true
	}

	for _, info := range a.infos {
		tables = append(tables, a.table(info))
	}

	for _, info := range a.infos {
		for _, rel := range info.Relations {
			if rel.Kind != ManyToMany || rel.JoinTable == "" || known[rel.JoinTable] {
				continue
			}
			known[rel.JoinTable] = true
			tables = append(tables, a.joinTable(info, rel))
		}
	}
	return tables
}

func (a *analyzer) table(info *EntityInfo) schema.Table {
	columns := make([]schema.Column, len(info.Fields))
	for i, f := range info.Fields {
		columns[i] = schema.Column{
			Type:         a.d.NormalizeType(f.GoType),
			Name:         f.Column,
			IsPrimary:    f.PrimaryKey,
			IsForeignKey: a.foreignKeys[columnKey{info.TableName, f.Column}],
		}
	}

	facts := columnFacts(info)
	relations := make([]schema.Relation, len(info.Relations))
	for i, rel := range info.Relations {
		relations[i] = schema.ResolveRelation(info.TableName, facts, a.relationFact(info, rel))
	}

	return schema.Table{Name: info.TableName, Columns: columns, Relations: relations}
}

// joinTable synthesizes the table backing a many_to_many relation.
func (a *analyzer) joinTable(owner *EntityInfo, rel RelationInfo) schema.Table {
	return schema.Table{
		Name: rel.JoinTable,
		Columns: []schema.Column{
			{Type: a.d.NormalizeType(pkType(owner)), Name: rel.ForeignKey, IsPrimary: true, IsForeignKey: true},
			{Type: a.d.NormalizeType(pkType(a.byName[rel.TargetType])), Name: rel.References, IsPrimary: true, IsForeignKey: true},
		},
	}
}

func (a *analyzer) relationFact(info *EntityInfo, rel RelationInfo) schema.RelationFact {
	fact := relationFactOf(rel)
	fact.InverseEntityTableName = a.targetTable(rel)
	if inverse, ok := a.inverseOf(info, rel); ok {
		inverseFact := relationFactOf(inverse)
		inverseFact.InverseEntityTableName = info.TableName
		fact.InverseSidePropertyPath = inverse.FieldName
		fact.InverseRelation = &inverseFact
	}
	return fact
}

// inverseOf finds the relation on the target entity that points back: the
// one named by the inverse option, or the only candidate otherwise.
func (a *analyzer) inverseOf(info *EntityInfo, rel RelationInfo) (RelationInfo, bool) {
	target, ok := a.byName[rel.TargetType]
	if !ok {
		return RelationInfo{}, false
	}

	var candidates []RelationInfo
	for _, r := range target.Relations {
		if target == info && r.FieldName == rel.FieldName {
			continue
		}
		if rel.Inverse != "" {
			if r.FieldName == rel.Inverse {
				return r, true
			}
			continue
		}
		if r.TargetType == info.Name && (r.Inverse == "" || r.Inverse == rel.FieldName) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) != 1 {
		return RelationInfo{}, false
	}
	return candidates[0], true
}

func (a *analyzer) targetTable(rel RelationInfo) string {
	if target, ok := a.byName[rel.TargetType]; ok {
		return target.TableName
	}
	return a.tableNameOf(rel.TargetType)
}

// relationFactOf maps a `rel` tag kind to the relation type and ownership
// of the side that declares it.
func relationFactOf(rel RelationInfo) schema.RelationFact {
	f := schema.RelationFact{PropertyPath: rel.FieldName}
	switch rel.Kind {
	case HasOne:
		f.RelationType = schema.OneToOne
	case HasMany:
		f.RelationType = schema.OneToMany
	case BelongsTo:
		f.RelationType = schema.ManyToOne
		if rel.Unique {
			f.RelationType = schema.OneToOne
		}
		f.IsOwning = true
	case ManyToMany:
		f.RelationType = schema.ManyToMany
		f.JoinTableName = rel.JoinTable
		f.IsOwning = rel.JoinTable != ""
	}
	return f
}

// columnFacts maps each column to the property it backs. A belongs_to
// foreign key column backs the relation field, so the relation inherits
// the column's nullability.
func columnFacts(info *EntityInfo) []schema.ColumnFact {
	facts := make([]schema.ColumnFact, 0, len(info.Fields))
	for _, f := range info.Fields {
		facts = append(facts, schema.ColumnFact{PropertyPath: f.Name, Nullable: f.Nullable})
	}
	for _, rel := range info.Relations {
		if rel.Kind != BelongsTo {
			continue
		}
		if f := info.fieldByColumn(rel.ForeignKey); f != nil {
			facts = append(facts, schema.ColumnFact{PropertyPath: rel.FieldName, Nullable: f.Nullable})
		}
	}
	return facts
}

func pkType(info *EntityInfo) string {
	if info == nil {
		return "int"
	}
	pk, err := info.PrimaryKeyField()
	if err != nil {
		return "int"
	}
	return pk.GoType
}
