package disjointset_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// allowedGlobals lists the package-level var names permitted in the library:
// the two error sentinels. Any other mutable package state is a defect.
var allowedGlobals = map[string]bool{
	"ErrItemNotFound": true,
	"ErrItemExists":   true,
}

// packageFiles parses every non-test Go file in the package directory.
func packageFiles(t *testing.T) map[string]*ast.File {
	t.Helper()

	paths, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatalf("globbing package files: %v", err)
	}
	fset := token.NewFileSet()
	files := make(map[string]*ast.File)
	for _, path := range paths {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("parsing %s: %v", path, err)
		}
		files[path] = f
	}
	if len(files) == 0 {
		t.Fatal("no package files found")
	}
	return files
}

// TestExportedSymbolsHaveGoDoc verifies that every exported type, function,
// method, var, and const carries a GoDoc comment starting with the symbol
// name, following Go conventions.
func TestExportedSymbolsHaveGoDoc(t *testing.T) {
	t.Parallel()

	for path, file := range packageFiles(t) {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if !d.Name.IsExported() {
					continue
				}
				checkDoc(t, path, d.Name.Name, d.Doc)
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch sp := spec.(type) {
					case *ast.TypeSpec:
						if !sp.Name.IsExported() {
							continue
						}
						doc := sp.Doc
						if doc == nil {
							doc = d.Doc
						}
						checkDoc(t, path, sp.Name.Name, doc)
					case *ast.ValueSpec:
						for _, name := range sp.Names {
							if !name.IsExported() {
								continue
							}
							doc := sp.Doc
							if doc == nil {
								doc = d.Doc
							}
							checkDoc(t, path, name.Name, doc)
						}
					}
				}
			}
		}
	}
}

// checkDoc fails the test if doc is missing or does not start with name.
func checkDoc(t *testing.T, path, name string, doc *ast.CommentGroup) {
	t.Helper()
	if doc == nil || strings.TrimSpace(doc.Text()) == "" {
		t.Errorf("%s: exported symbol %s has no GoDoc comment", path, name)
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(doc.Text()), name+" ") {
		t.Errorf("%s: GoDoc for %s does not start with the symbol name", path, name)
	}
}

// TestNoMutablePackageState verifies that no package-level vars exist other
// than the error sentinels. The structures themselves hold all state, so
// independent instances never interfere.
func TestNoMutablePackageState(t *testing.T) {
	t.Parallel()

	for path, file := range packageFiles(t) {
		for _, decl := range file.Decls {
			d, ok := decl.(*ast.GenDecl)
			if !ok || d.Tok != token.VAR {
				continue
			}
			for _, spec := range d.Specs {
				sp, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, name := range sp.Names {
					if !allowedGlobals[name.Name] {
						t.Errorf("%s: unexpected package-level var %s", path, name.Name)
					}
				}
			}
		}
	}
}
