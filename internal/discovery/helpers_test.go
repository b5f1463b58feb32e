package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file below root, creating parent directories.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func mkdir(t *testing.T, root, rel string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0755); err != nil {
		t.Fatal(err)
	}
}

func newTree(root string) Tree {
	return Tree{Root: root, CommandsDir: "commands", SkillsDir: "skills"}
}

func block(lines string) string {
	return "---\n" + lines + "\n---\n\n# Body\n"
}
