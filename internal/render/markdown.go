// Package render turns documentation namespaces into Markdown with embedded
// Mermaid ER diagrams.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"

	"github.com/mickamy/ormdoc/internal/schema"
)

// Generator is the banner link written under the document title.
const Generator = "https://github.com/mickamy/ormdoc"

type markdownData struct {
	Title      string
	Generator  string
	Namespaces []schema.Namespace
}

// Markdown writes the documentation for namespaces to w.
func Markdown(w io.Writer, title string, namespaces []schema.Namespace) error {
	data := markdownData{
		Title:      title,
		Generator:  Generator,
		Namespaces: namespaces,
	}
	if err := markdownTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// Anchor returns the heading anchor GitHub assigns to a heading.
func Anchor(heading string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(heading)) {
		switch {
		case r == ' ':
			sb.WriteRune('-')
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

var funcMap = template.FuncMap{
	"join":    strings.Join,
	"anchor":  Anchor,
	"mermaid": Mermaid,
	"code": func(s string) string {
		return "`" + s + "`"
	},
	"fence": func() string {
		return "```"
	},
}

var markdownTmpl = template.Must(template.New("markdown").Funcs(funcMap).Parse(markdownTemplate))

const markdownTemplate = `# {{.Title}}

> Generated by [{{code "ormdoc"}}]({{.Generator}})

## Table of Contents

{{range .Namespaces}}- [{{.NamespaceName}}](#{{anchor .NamespaceName}})
{{end}}
{{- range .Namespaces}}
## {{.NamespaceName}}

{{fence}}mermaid
{{mermaid .Tables}}{{fence}}
{{range .ClassDocs}}
### {{.ClassName}}
{{with join .Docs " "}}
{{.}}
{{end}}
{{- if .Properties}}
**Properties**

{{range .Properties}}- {{code .PropertyName}}{{with join .Docs " "}}: {{.}}{{end}}
{{end}}
{{- end}}
{{- end}}
{{- end}}`
