package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, dir, name string) {
	t.Helper()
	envlitDir := filepath.Join(dir, ProfileDir)
	require.NoError(t, os.MkdirAll(envlitDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(envlitDir, name), []byte("env: {}\n"), 0o644))
}

func TestFindProfile_DefaultsToDefaultName(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "default.yaml")

	path, err := FindProfile(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ProfileDir, "default.yaml"), path)
}

func TestFindProfile_TriesYamlThenYml(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "dev.yml")

	path, err := FindProfile(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ProfileDir, "dev.yml"), path)
}

func TestFindProfile_MissingDirReturnsEmpty(t *testing.T) {
	dir := t.TempDir()

	path, err := FindProfile(dir, "default")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestFindProfile_MissingFileReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "default.yaml")

	path, err := FindProfile(dir, "prod")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestListProfiles_SortedAndDeduplicated(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "default.yaml")
	writeProfile(t, dir, "dev.yaml")
	writeProfile(t, dir, "dev.yml")

	names, err := ListProfiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "dev"}, names)
}

func TestListProfiles_NoDirReturnsNil(t *testing.T) {
	dir := t.TempDir()

	names, err := ListProfiles(dir)
	require.NoError(t, err)
	assert.Nil(t, names)
}
