package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommitAndStatus(t *testing.T) {
	dir := t.TempDir()

	repo, err := Init(dir)
	require.NoError(t, err)

	dirty, err := repo.Dirty()
	require.NoError(t, err)
	assert.False(t, dirty, "fresh repository is clean")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main"), 0o644))

	dirty, err = repo.Dirty()
	require.NoError(t, err)
	assert.True(t, dirty)

	changed, err := repo.ChangedFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, changed)

	hash, err := repo.CommitAll("generate project")
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	dirty, err = repo.Dirty()
	require.NoError(t, err)
	assert.False(t, dirty, "commit leaves the tree clean")
}

func TestInitIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	_, err := Init(dir)
	require.NoError(t, err)

	repo, err := Init(dir)
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestOpenMissingRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.Error(t, err)
}
