// Package docs extracts class documentation from the doc comments of
// entity structs.
//
// A comment line starting with "@" is a tag:
//
//	// Post is a blog entry.
//	// @namespace Blog
//	type Post struct {
//		// Comments are the replies.
//		// @minitems
//		Comments []Comment `rel:"has_many"`
//	}
//
// Class tags are @namespace <name>, @erd <name>, @describe <name> and
// @hidden; fields accept @minitems. Every other non-blank line is
// documentation text.
package docs

import (
	"go/ast"
	"slices"
	"strings"

	"github.com/mickamy/ormdoc/internal/schema"
	"github.com/mickamy/ormdoc/internal/source"
)

const (
	tagNamespace = "namespace"
	tagErd       = "erd"
	tagDescribe  = "describe"
	tagHidden    = "hidden"
	tagMinitems  = "minitems"
)

type tag struct {
	name  string
	value string
}

// Extract returns one ClassDoc per exported struct in set, named after the
// struct's table.
func Extract(set *source.Set) []schema.ClassDoc {
	structs := set.Structs()
	docs := make([]schema.ClassDoc, 0, len(structs))
	for _, s := range structs {
		docs = append(docs, classDoc(set.TableName(s.Name), s))
	}
	return docs
}

func classDoc(className string, s source.Struct) schema.ClassDoc {
	lines, tags := parseComment(s.Doc)
	doc := schema.ClassDoc{
		ClassName: className,
		Docs:      lines,
	}
	for _, t := range tags {
		switch t.name {
		case tagNamespace:
			doc.NamespaceTags = append(doc.NamespaceTags, t.value)
		case tagErd:
			doc.ErdTags = append(doc.ErdTags, t.value)
		case tagDescribe:
			doc.DescribeTags = append(doc.DescribeTags, t.value)
		case tagHidden:
			doc.HasHiddenTag = true
		}
	}

	for _, field := range s.Type.Fields.List {
		lines, tags := parseComment(field.Doc, field.Comment)
		minitems := hasTag(tags, tagMinitems)
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			doc.Properties = append(doc.Properties, schema.PropertyDoc{
				PropertyName:   name.Name,
				Docs:           slices.Clone(lines),
				HasMinitemsTag: minitems,
			})
		}
	}

	doc.Normalize()
	return doc
}

// parseComment splits comment groups into documentation lines and tags.
func parseComment(groups ...*ast.CommentGroup) ([]string, []tag) {
	var lines []string
	var tags []tag
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, line := range strings.Split(g.Text(), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if rest, ok := strings.CutPrefix(line, "@"); ok {
				name, value, _ := strings.Cut(rest, " ")
				tags = append(tags, tag{name: name, value: strings.TrimSpace(value)})
				continue
			}
			lines = append(lines, line)
		}
	}
	return lines, tags
}

func hasTag(tags []tag, name string) bool {
	for _, t := range tags {
		if t.name == name {
			return true
		}
	}
	return false
}
