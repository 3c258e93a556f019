package render

import (
	"fmt"
	"strings"

	"github.com/mickamy/ormdoc/internal/schema"
)

// Mermaid renders tables as a Mermaid erDiagram. Relationships come first,
// one line per unordered table pair; the first relation seen for a pair
// wins. Entity blocks follow in table order.
func Mermaid(tables []schema.Table) string {
	var sb strings.Builder
	sb.WriteString("erDiagram\n")

	seen := make(map[[2]string]bool)
	for _, t := range tables {
		for _, rel := range t.Relations {
			key := pairKey(rel.Source, rel.Target)
			if seen[key] {
				continue
			}
			seen[key] = true
			fmt.Fprintf(&sb, "    %s %s %s : %q\n",
				entityName(rel.Source), cardinality(rel), entityName(rel.Target), rel.PropertyPath)
		}
	}

	for _, t := range tables {
		if len(t.Columns) == 0 {
			fmt.Fprintf(&sb, "    %s\n", entityName(t.Name))
			continue
		}
		fmt.Fprintf(&sb, "    %s {\n", entityName(t.Name))
		for _, c := range t.Columns {
			fmt.Fprintf(&sb, "        %s %s%s\n", attributeType(c.Type), entityName(c.Name), keys(c))
		}
		sb.WriteString("    }\n")
	}
	return sb.String()
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// cardinality returns the relationship glyph read from source to target.
// A nullable relation makes the target side optional.
func cardinality(rel schema.Relation) string {
	left := "||"
	if rel.RelationType == schema.ManyToOne || rel.RelationType == schema.ManyToMany {
		left = "}|"
	}

	var right string
	switch rel.RelationType {
	case schema.OneToMany, schema.ManyToMany:
		right = "|{"
		if rel.Nullable {
			right = "o{"
		}
	default:
		right = "||"
		if rel.Nullable {
			right = "o|"
		}
	}
	return left + "--" + right
}

func keys(c schema.Column) string {
	switch {
	case c.IsPrimary && c.IsForeignKey:
		return " PK, FK"
	case c.IsPrimary:
		return " PK"
	case c.IsForeignKey:
		return " FK"
	default:
		return ""
	}
}

// attributeType turns a column type into a single Mermaid word.
func attributeType(t string) string {
	t = strings.ReplaceAll(t, "[]", "_array")
	t = identifier(t)
	if t == "" {
		return "unknown"
	}
	return t
}

func entityName(name string) string {
	if n := identifier(name); n != "" {
		return n
	}
	return "unnamed"
}

func identifier(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
	return strings.Trim(s, "_")
}
