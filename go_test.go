package radix_test

import (
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
	"testing"
)

// TestNoDeps keeps the library itself on the standard library. The command
// and its tests may import whatever they need.
func TestNoDeps(t *testing.T) {
	if os.Getenv("RADIX_SKIP_DEPS") != "" {
		t.Skip()
	}

	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, ".", func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ImportsOnly)
	if err != nil {
		t.Fatal(err)
	}

	for _, pkg := range pkgs {
		for fname, f := range pkg.Files {
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					t.Fatal(err)
				}
				if first := strings.SplitN(path, "/", 2)[0]; strings.Contains(first, ".") {
					t.Fatalf("%s imports non-stdlib package %q", fname, path)
				}
			}
		}
	}
}
