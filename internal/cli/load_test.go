package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfileFile(t *testing.T, dir, name, content string) {
	t.Helper()
	envlitDir := filepath.Join(dir, ".envlit")
	require.NoError(t, os.MkdirAll(envlitDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(envlitDir, name), []byte(content), 0o644))
}

func resetLoadState() {
	preparedProfile = nil
	preparedBound = nil
	loadConfigFlag = ""
}

func TestRunLoad_FindsDefaultProfile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProfileFile(t, dir, "default.yaml", "env:\n  MY_VAR: hello\n")

	defer resetLoadState()
	rootCmd.SetArgs([]string{"load"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), `export MY_VAR="hello"`)
	assert.Contains(t, buf.String(), "track begin")
}

func TestRunLoad_MissingProfileIsUsageError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	defer resetLoadState()
	rootCmd.SetArgs([]string{"load"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	code := Execute()
	assert.Equal(t, 2, code)
}

func TestPrepareLoadFlags_BindsProfileFlag(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProfileFile(t, dir, "default.yaml", `
env:
  CUDA_VISIBLE_DEVICES: "9"
flags:
  cuda:
    flag: ["--cuda"]
    target: CUDA_VISIBLE_DEVICES
`)

	defer resetLoadState()
	prepareLoadFlags([]string{"load"})

	require.NotNil(t, preparedProfile)
	assert.NotNil(t, loadCmd.Flags().Lookup("cuda"))
}

func TestAfterSubcommand(t *testing.T) {
	assert.Equal(t, []string{"dev", "--cuda", "1"}, afterSubcommand([]string{"load", "dev", "--cuda", "1"}, "load"))
	assert.Nil(t, afterSubcommand([]string{"unload"}, "load"))
}
