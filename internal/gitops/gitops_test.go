package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir is not a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))
}

func TestCommitSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{}"), 0o644))

	hash, err := CommitSnapshot(dir, "snapshot: update state", "Dompet", "dompet@localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "snapshot: update state")
}

func TestCommitSnapshot_CleanTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{}"), 0o644))

	_, err := CommitSnapshot(dir, "first", "Dompet", "dompet@localhost")
	require.NoError(t, err)

	hash, err := CommitSnapshot(dir, "second", "Dompet", "dompet@localhost")
	require.NoError(t, err)
	assert.Empty(t, hash, "nothing to commit is a no-op")
}
