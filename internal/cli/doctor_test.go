package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvx/envlit/internal/state"
)

func TestRunDoctor_NoOverlayTracked(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	rootCmd.SetArgs([]string{"doctor"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "no overlay is currently tracked")
}

func TestRunDoctor_ReportsTrackedVariables(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	varName := state.VarName(cwd)

	store := state.New()
	original := "old"
	current := "new"
	store.Update("MY_VAR", &original, &current)
	raw, err := store.Serialize()
	require.NoError(t, err)
	t.Setenv(varName, raw)

	rootCmd.SetArgs([]string{"doctor"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "overlay active: 1 variable(s) tracked")
	assert.Contains(t, out, "MY_VAR")
}
