//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// setupMarketplace creates a plugin root shaped like a real marketplace
// checkout: grouped commands, nested skill categories, a symlinked skill
// collection and a drafts folder. Returns the root path.
func setupMarketplace(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	// --- Commands ---
	writeFile(t, filepath.Join(root, "commands/deploy.md"), `---
description: Deploy the current service
argument-hint: [environment]
---
Deploy to $ARGUMENTS.
`)
	writeFile(t, filepath.Join(root, "commands/review.md"), "Review the staged changes.\n")
	writeFile(t, filepath.Join(root, "commands/github/issue.md"), `---
description: Create a GitHub issue from the conversation
---
`)
	writeFile(t, filepath.Join(root, "commands/github/pr.md"), "\ufeff---\r\ndescription: Open a pull request\r\n---\r\n")

	// --- Skills ---
	writeFile(t, filepath.Join(root, "skills/testing/unit/SKILL.md"), `---
name: unit-test
description: Write and run unit tests
---
`)
	writeFile(t, filepath.Join(root, "skills/testing/unit/examples/SKILL.md"), `---
name: never-seen
---
`)
	writeFile(t, filepath.Join(root, "skills/scm/git/commit-analyzer/SKILL.md"), `---
name: commit-analyzer
description: Analyze git commit history
---
`)
	writeFile(t, filepath.Join(root, "skills/docs/readme-writer/SKILL.md"), "# README writer\n")
	writeFile(t, filepath.Join(root, "skills/_drafts/idea/SKILL.md"), `---
name: idea
---
`)

	// --- Shared skills linked into the tree ---
	shared := filepath.Join(t.TempDir(), "shared")
	writeFile(t, filepath.Join(shared, "lint/SKILL.md"), `---
description: Lint the repository
---
`)
	if err := os.Symlink(shared, filepath.Join(root, "skills/shared")); err != nil {
		t.Fatalf("symlinking shared skills: %v", err)
	}
	// A link back to the skills root must not loop forever.
	if err := os.Symlink(filepath.Join(root, "skills"), filepath.Join(root, "skills/docs/loop")); err != nil {
		t.Fatalf("symlinking loop: %v", err)
	}

	return root
}

// writeFile creates a file, making parent directories as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists checks that a file exists at path.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s", path)
		return
	}
	if info.IsDir() {
		t.Errorf("expected file but got directory: %s", path)
	}
}
