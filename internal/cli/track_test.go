package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackBegin_PrintsEnvironmentSnapshot(t *testing.T) {
	t.Setenv("ENVLIT_TRACK_BEGIN_TEST", "1")

	rootCmd.SetArgs([]string{"track", "begin"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	require.NoError(t, rootCmd.Execute())

	var snapshot map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snapshot))
	assert.Equal(t, "1", snapshot["ENVLIT_TRACK_BEGIN_TEST"])
}

func TestTrackApply_Prepend(t *testing.T) {
	t.Setenv("TRACK_APPLY_TEST_PATH", "/usr/bin")

	defer func() { applyName, applyPipeline = "", "" }()

	rootCmd.SetArgs([]string{
		"track", "apply",
		"--name", "TRACK_APPLY_TEST_PATH",
		"--pipeline", `[{"op":"prepend","value":"/opt/bin","separator":":"}]`,
	})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "export TRACK_APPLY_TEST_PATH=/opt/bin:/usr/bin")
}

func TestTrackApply_RemoveResultingInUnset(t *testing.T) {
	t.Setenv("TRACK_APPLY_TEST_SOLO", "/only/entry")

	pipeline := `[{"op":"remove","value":"/only/entry","separator":":"}]`
	rootCmd.SetArgs([]string{"track", "apply", "--name", "TRACK_APPLY_TEST_SOLO", "--pipeline", pipeline})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "unset TRACK_APPLY_TEST_SOLO")
}
