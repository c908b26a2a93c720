// Package testutil provides filesystem fixture helpers for traceability
// tests: tier directory layouts and artifact documents with frontmatter.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TierDirs creates the three conventional tier directories under a fresh
// temp root and returns them in lineage order.
func TierDirs(t *testing.T) (specsDir, plansDir, tasksDir string) {
	t.Helper()

	root := t.TempDir()
	specsDir = filepath.Join(root, "docs", "specs")
	plansDir = filepath.Join(root, "docs", "plans")
	tasksDir = filepath.Join(root, "docs", "tasks")
	for _, dir := range []string{specsDir, plansDir, tasksDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create tier directory %s: %v", dir, err)
		}
	}
	return specsDir, plansDir, tasksDir
}

// WriteSpec writes a valid spec artifact document.
func WriteSpec(t *testing.T, dir, id string, issue int) string {
	t.Helper()

	content := fmt.Sprintf(`---
id: %s
type: spec
issue: %d
---

# %s

Body text.
`, id, issue, id)
	return WriteDoc(t, dir, strings.ToLower(id)+".md", content)
}

// WritePlan writes a valid plan artifact document referencing a spec.
func WritePlan(t *testing.T, dir, id string, issue int, parentID string) string {
	t.Helper()

	content := fmt.Sprintf(`---
id: %s
type: plan
issue: %d
parentId: %s
---

# %s
`, id, issue, parentID, id)
	return WriteDoc(t, dir, strings.ToLower(id)+".md", content)
}

// WriteTask writes a valid task artifact document referencing a plan.
func WriteTask(t *testing.T, dir, id string, issue int, parentID string) string {
	t.Helper()

	content := fmt.Sprintf(`---
id: %s
type: task
issue: %d
parentId: %s
---

# %s
`, id, issue, parentID, id)
	return WriteDoc(t, dir, strings.ToLower(id)+".md", content)
}

// WriteDoc writes content to name inside dir, creating parents if needed,
// and returns the full path.
func WriteDoc(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
