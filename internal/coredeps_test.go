package internal_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The reducer package may only depend on the standard library and the
// modules listed here.
var allowedCoreModules = []string{
	"github.com/google/uuid",
	"github.com/shopspring/decimal",
	"go.uber.org/zap",
}

func TestCoreDependencies(t *testing.T) {
	files, err := filepath.Glob("../*.go")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no core sources found")
	}

	fset := token.NewFileSet()
	for _, fn := range files {
		if strings.HasSuffix(fn, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, fn, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", fn, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if isStdlib(path) || isAllowed(path) {
				continue
			}
			t.Errorf("%s imports %s: core must stay free of adapter dependencies", fn, path)
		}
	}
}

func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

func isAllowed(path string) bool {
	for _, mod := range allowedCoreModules {
		if path == mod || strings.HasPrefix(path, mod+"/") {
			return true
		}
	}
	return false
}
