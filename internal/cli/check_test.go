package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// dirFlags always pins all three tier directories so flag state does not
// leak between tests sharing the command tree.
func dirFlags(specsDir, plansDir, tasksDir string) []string {
	return []string{
		"--specs-dir", specsDir,
		"--plans-dir", plansDir,
		"--tasks-dir", tasksDir,
		"--no-color",
		"--quiet=false",
	}
}

func TestCheck_ValidGraph(t *testing.T) {
	specsDir, plansDir, tasksDir := testutil.TierDirs(t)
	testutil.WriteSpec(t, specsDir, "SPEC-1", 42)
	testutil.WritePlan(t, plansDir, "PLAN-1", 42, "SPEC-1")
	testutil.WriteTask(t, tasksDir, "TASK-1", 42, "PLAN-1")

	out, err := execute(t, dirFlags(specsDir, plansDir, tasksDir)...)
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, ExitCode(err))
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "specs:  1")
}

func TestCheck_InvalidGraphExitsOne(t *testing.T) {
	specsDir, plansDir, tasksDir := testutil.TierDirs(t)
	testutil.WritePlan(t, plansDir, "PLAN-1", 42, "SPEC-1")

	out, err := execute(t, dirFlags(specsDir, plansDir, tasksDir)...)
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "plan PLAN-1 references missing spec SPEC-1")
}

func TestCheck_EmptyTiersPass(t *testing.T) {
	root := t.TempDir()
	flags := dirFlags(
		filepath.Join(root, "docs", "specs"),
		filepath.Join(root, "docs", "plans"),
		filepath.Join(root, "docs", "tasks"),
	)

	out, err := execute(t, flags...)
	require.NoError(t, err)
	assert.Contains(t, out, "specs:  0")
	assert.Contains(t, out, "PASS")
}

func TestCheck_QuietPrintsErrorsOnly(t *testing.T) {
	specsDir, plansDir, tasksDir := testutil.TierDirs(t)
	testutil.WritePlan(t, plansDir, "PLAN-1", 42, "SPEC-1")

	args := append(dirFlags(specsDir, plansDir, tasksDir), "--quiet")
	out, err := execute(t, args...)
	require.Error(t, err)
	assert.NotContains(t, out, "Traceability graph:")
	assert.Contains(t, out, "references missing spec")
}

func TestCheck_QuietValidPrintsNothing(t *testing.T) {
	specsDir, plansDir, tasksDir := testutil.TierDirs(t)
	testutil.WriteSpec(t, specsDir, "SPEC-1", 1)

	args := append(dirFlags(specsDir, plansDir, tasksDir), "--quiet")
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDoctor_ReportsDirectories(t *testing.T) {
	specsDir, plansDir, tasksDir := testutil.TierDirs(t)
	testutil.WriteSpec(t, specsDir, "SPEC-1", 7)

	args := append([]string{"doctor"}, dirFlags(specsDir, plansDir, tasksDir)...)
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration:")
	assert.Contains(t, out, specsDir)
	assert.Contains(t, out, "1 artifact(s)")
}

func TestDoctor_AbsentDirectory(t *testing.T) {
	specsDir, plansDir, _ := testutil.TierDirs(t)
	missing := filepath.Join(t.TempDir(), "gone")

	args := append([]string{"doctor"}, dirFlags(specsDir, plansDir, missing)...)
	out, err := execute(t, args...)
	require.NoError(t, err, "doctor never fails the run")
	assert.Contains(t, out, "absent, contributes zero records")
}

func TestDoctor_VerboseListsIssues(t *testing.T) {
	specsDir, plansDir, tasksDir := testutil.TierDirs(t)
	testutil.WriteSpec(t, specsDir, "SPEC-1", 7)
	testutil.WritePlan(t, plansDir, "PLAN-1", 7, "SPEC-1")

	args := append([]string{"doctor", "--verbose"}, dirFlags(specsDir, plansDir, tasksDir)...)
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "#7: SPEC-1, PLAN-1")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "traceability dev")
}
