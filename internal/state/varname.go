package state

import (
	"crypto/md5" //nolint:gosec // non-cryptographic directory-scoping hash, not a security boundary
	"encoding/hex"
)

// SnapshotVarName is the transient environment variable begin writes and
// end reads; it never persists past a single load.
const SnapshotVarName = "__ENVLIT_SNAPSHOT_A"

// VarName returns the state variable name for the overlay scoped to cwd:
// __ENVLIT_STATE_ followed by the first eight hex characters of the MD5
// digest of cwd. Two shells in two different directories get different
// state variables and never observe each other's overlay.
func VarName(cwd string) string {
	sum := md5.Sum([]byte(cwd)) //nolint:gosec
	return "__ENVLIT_STATE_" + hex.EncodeToString(sum[:])[:8]
}
