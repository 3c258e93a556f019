// Package source loads the Go files that declare documented entities.
package source

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mickamy/ormdoc/internal/naming"
)

// ErrNoSourceFiles is returned when the given paths match no Go file.
var ErrNoSourceFiles = errors.New("no source files found")

// Struct is an exported struct type declaration.
type Struct struct {
	Name string
	Type *ast.StructType
	// Doc is the type's doc comment, or the enclosing declaration's when
	// the type is declared alone.
	Doc *ast.CommentGroup
}

// Set is a collection of parsed Go files.
type Set struct {
	Fset  *token.FileSet
	Files []*ast.File
	Paths []string

	tableNames map[string]string
}

// Load parses every Go file matched by paths. A path may be a file, a
// directory (its non-test .go files, not recursive) or a glob pattern.
func Load(paths ...string) (*Set, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSourceFiles, strings.Join(paths, ", "))
	}

	s := &Set{Fset: token.NewFileSet(), tableNames: make(map[string]string)}
	for _, path := range files {
		f, err := parser.ParseFile(s.Fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse file: %w", err)
		}
		s.Files = append(s.Files, f)
		s.Paths = append(s.Paths, path)
		collectTableNames(f, s.tableNames)
	}
	return s, nil
}

// TableName returns the table name of the struct type: the string literal
// returned by its TableName method when declared, the inferred name otherwise.
func (s *Set) TableName(typeName string) string {
	if name, ok := s.tableNames[typeName]; ok {
		return name
	}
	return naming.TableName(typeName)
}

// Structs returns every exported struct type in declaration order.
func (s *Set) Structs() []Struct {
	var structs []Struct
	for _, f := range s.Files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				structs = append(structs, Struct{Name: ts.Name.Name, Type: st, Doc: doc})
			}
		}
	}
	return structs
}

func expand(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range paths {
		if strings.ContainsAny(p, "*?[") {
			matches, err := filepath.Glob(p)
			if err != nil {
				return nil, fmt.Errorf("glob %s: %w", p, err)
			}
			for _, m := range matches {
				if isGoSource(m) {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", p, err)
		}
		for _, e := range entries {
			if !e.IsDir() && isGoSource(e.Name()) {
				add(filepath.Join(p, e.Name()))
			}
		}
	}
	return files, nil
}

func isGoSource(name string) bool {
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

// collectTableNames records TableName methods of the form
//
//	func (User) TableName() string { return "accounts" }
func collectTableNames(f *ast.File, names map[string]string) {
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil || len(fd.Recv.List) != 1 || fd.Name.Name != "TableName" {
			continue
		}
		if fd.Type.Params.NumFields() != 0 || fd.Body == nil || len(fd.Body.List) != 1 {
			continue
		}
		ret, ok := fd.Body.List[0].(*ast.ReturnStmt)
		if !ok || len(ret.Results) != 1 {
			continue
		}
		lit, ok := ret.Results[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			continue
		}
		name, err := strconv.Unquote(lit.Value)
		if err != nil {
			continue
		}
		recv := fd.Recv.List[0].Type
		if star, ok := recv.(*ast.StarExpr); ok {
			recv = star.X
		}
		if ident, ok := recv.(*ast.Ident); ok {
			names[ident.Name] = name
		}
	}
}
