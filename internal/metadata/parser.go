// Package metadata extracts the structural schema (tables, columns and
// relations) from `db` and `rel` struct tags.
package metadata

import (
	"fmt"
	"go/ast"
	"reflect"
	"strings"

	"github.com/mickamy/ormdoc/internal/naming"
	"github.com/mickamy/ormdoc/internal/source"
)

// Relation kinds accepted in `rel` tags.
const (
	HasOne     = "has_one"
	HasMany    = "has_many"
	BelongsTo  = "belongs_to"
	ManyToMany = "many_to_many"
)

// FieldInfo holds parsed metadata for one column field.
type FieldInfo struct {
	Name       string // Go field name, e.g. "ID"
	Column     string // DB column name from `db:"id"` tag
	GoType     string // Go type as string, e.g. "int", "string", "time.Time"
	PrimaryKey bool   // true if tag contains "primaryKey"
	Nullable   bool   // pointer, sql.Null* or "nullable" option
}

// RelationInfo holds parsed metadata for one relation field.
type RelationInfo struct {
	FieldName  string // "Posts"
	TargetType string // "Post"
	Kind       string // HasOne, HasMany, BelongsTo or ManyToMany
	ForeignKey string // "user_id"
	JoinTable  string // many_to_many owning side only: "user_tags"
	References string // many_to_many only: "tag_id"
	Inverse    string // field name of the relation on the target, if given
	Unique     bool   // belongs_to only: one-to-one
}

// EntityInfo holds parsed metadata for one entity struct.
type EntityInfo struct {
	Name      string // Go struct name, e.g. "User"
	TableName string
	Fields    []FieldInfo
	Relations []RelationInfo
}

// PrimaryKeyField returns the primary key field, or an error if none or
// multiple are defined.
func (e *EntityInfo) PrimaryKeyField() (*FieldInfo, error) {
	var pk *FieldInfo
	for i := range e.Fields {
		if e.Fields[i].PrimaryKey {
			if pk != nil {
				return nil, fmt.Errorf("multiple primary keys: %s and %s", pk.Name, e.Fields[i].Name)
			}
			pk = &e.Fields[i]
		}
	}
	if pk == nil {
		return nil, fmt.Errorf("no primary key defined for %s", e.Name)
	}
	return pk, nil
}

func (e *EntityInfo) fieldByColumn(column string) *FieldInfo {
	for i := range e.Fields {
		if e.Fields[i].Column == column {
			return &e.Fields[i]
		}
	}
	return nil
}

// Parse returns EntityInfo for every exported struct in set that has at
// least one column field.
func Parse(set *source.Set) ([]*EntityInfo, error) {
	var infos []*EntityInfo
	for _, s := range set.Structs() {
		info := &EntityInfo{Name: s.Name, TableName: set.TableName(s.Name)}
		for _, field := range s.Type.Fields.List {
			if err := parseField(info, field); err != nil {
				return nil, fmt.Errorf("%s: %w", s.Name, err)
			}
		}
		if len(info.Fields) == 0 {
			continue
		}
		applyRelationDefaults(info)
		infos = append(infos, info)
	}
	return infos, nil
}

func parseField(info *EntityInfo, field *ast.Field) error {
	if len(field.Names) == 0 {
		return nil // embedded field, skip
	}

	name := field.Names[0].Name

	// Skip unexported fields.
	if !field.Names[0].IsExported() {
		return nil
	}

	goType := typeToString(field.Type)

	var tag reflect.StructTag
	if field.Tag != nil {
		tag = reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
	}

	if relTag, ok := tag.Lookup("rel"); ok {
		rel, err := parseRelTag(name, goType, relTag)
		if err != nil {
			return err
		}
		info.Relations = append(info.Relations, rel)
		return nil
	}

	// Defaults: column inferred from field name, ID field is primary key.
	column := naming.CamelToSnake(name)
	primaryKey := name == "ID"
	nullable := strings.HasPrefix(goType, "*") || strings.HasPrefix(goType, "sql.Null")

	// Override with db tag if present.
	if dbTag, ok := tag.Lookup("db"); ok {
		if dbTag == "-" {
			return nil // explicitly skipped
		}
		parts := strings.Split(dbTag, ",")
		if parts[0] != "" {
			column = parts[0]
		}
		for _, opt := range parts[1:] {
			switch opt {
			case "primaryKey":
				primaryKey = true
			case "nullable":
				nullable = true
			}
		}
	}

	if info.fieldByColumn(column) != nil {
		return fmt.Errorf("duplicate column %q", column)
	}

	info.Fields = append(info.Fields, FieldInfo{
		Name:       name,
		Column:     column,
		GoType:     goType,
		PrimaryKey: primaryKey,
		Nullable:   nullable,
	})
	return nil
}

// parseRelTag parses `rel:"kind,key:value,..."`.
func parseRelTag(fieldName, goType, tag string) (RelationInfo, error) {
	parts := strings.Split(tag, ",")
	rel := RelationInfo{
		FieldName:  fieldName,
		TargetType: elemTypeName(goType),
		Kind:       strings.TrimSpace(parts[0]),
	}

	switch rel.Kind {
	case HasOne, HasMany, BelongsTo, ManyToMany:
	default:
		return RelationInfo{}, fmt.Errorf("field %s: unknown relation %q", fieldName, rel.Kind)
	}

	for _, opt := range parts[1:] {
		key, value, _ := strings.Cut(strings.TrimSpace(opt), ":")
		switch key {
		case "foreign_key":
			rel.ForeignKey = value
		case "join_table":
			rel.JoinTable = value
		case "references":
			rel.References = value
		case "inverse":
			rel.Inverse = value
		case "unique":
			rel.Unique = true
		default:
			return RelationInfo{}, fmt.Errorf("field %s: unknown relation option %q", fieldName, key)
		}
	}
	return rel, nil
}

// applyRelationDefaults fills in foreign keys left out of `rel` tags.
// e.g. Post.Author belongs_to → "author_id"; User.Posts has_many → "user_id".
func applyRelationDefaults(info *EntityInfo) {
	for i := range info.Relations {
		rel := &info.Relations[i]
		switch rel.Kind {
		case BelongsTo:
			if rel.ForeignKey == "" {
				rel.ForeignKey = naming.CamelToSnake(rel.FieldName) + "_id"
			}
		case HasOne, HasMany:
			if rel.ForeignKey == "" {
				rel.ForeignKey = naming.CamelToSnake(info.Name) + "_id"
			}
		case ManyToMany:
			if rel.JoinTable == "" {
				continue
			}
			if rel.ForeignKey == "" {
				rel.ForeignKey = naming.CamelToSnake(info.Name) + "_id"
			}
			if rel.References == "" {
				rel.References = naming.CamelToSnake(rel.TargetType) + "_id"
			}
		}
	}
}

// elemTypeName returns the struct name a relation field points at:
// "*Author" → "Author", "[]amodel.OAuthAccount" → "OAuthAccount".
func elemTypeName(goType string) string {
	t := strings.TrimLeft(goType, "*[]")
	if i := strings.LastIndex(t, "."); i >= 0 {
		t = t[i+1:]
	}
	return t
}

func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", typeToString(t.Len), typeToString(t.Elt))
	case *ast.MapType:
		return "map[" + typeToString(t.Key) + "]" + typeToString(t.Value)
	case *ast.IndexExpr:
		return typeToString(t.X) + "[" + typeToString(t.Index) + "]"
	case *ast.BasicLit:
		return t.Value
	case *ast.InterfaceType:
		return "any"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
