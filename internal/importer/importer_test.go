package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestSpliceInlinesImportedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lib.tl", "ComeAndDo helper(){ return 1; }\n")
	main := writeFile(t, dir, "main.tl", "import \"lib.tl\";\nprint(helper());\n")

	out, err := Splice(main)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "ComeAndDo helper") {
		t.Fatalf("expected imported text to be spliced in, got:\n%s", out)
	}
	if !strings.Contains(string(out), "print(helper())") {
		t.Fatalf("expected host text to remain, got:\n%s", out)
	}
}

func TestSpliceDedupsByCanonicalPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shared.tl", "int shared = 1;\n")
	writeFile(t, dir, "a.tl", "import \"shared.tl\";\n")
	main := writeFile(t, dir, "main.tl", "import \"a.tl\";\nimport \"shared.tl\";\nprint(shared);\n")

	out, err := Splice(main)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count := strings.Count(string(out), "int shared = 1;")
	if count != 1 {
		t.Fatalf("expected shared.tl to be spliced exactly once, got %d times in:\n%s", count, out)
	}
}

func TestSpliceMissingFileIsIOError(t *testing.T) {
	dir := t.TempDir()
	main := writeFile(t, dir, "main.tl", "import \"missing.tl\";\n")

	_, err := Splice(main)
	if err == nil {
		t.Fatal("expected an error for a missing imported file")
	}
}

func TestSpliceOnlyRecognizesLeadingImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "late.tl", "int late = 1;\n")
	main := writeFile(t, dir, "main.tl", "print(1);\nimport \"late.tl\";\n")

	out, err := Splice(main)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "int late") {
		t.Fatalf("expected a non-leading import line to be left as source text, got:\n%s", out)
	}
}
