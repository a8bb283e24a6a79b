package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetUnloadState() {
	unloadProfileFlag = ""
	unloadConfigFlag = ""
}

func TestRunUnload_NoProfileStillRestores(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	defer resetUnloadState()
	rootCmd.SetArgs([]string{"unload"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "track restore")
}

func TestRunUnload_RunsHooksFromDiscoveredProfile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProfileFile(t, dir, "default.yaml", `
env: {}
hooks:
  pre_unload:
    - name: Cleanup
      script: echo cleaning up
`)

	defer resetUnloadState()
	rootCmd.SetArgs([]string{"unload"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "cleaning up")
	assert.Contains(t, buf.String(), "track restore")
}
