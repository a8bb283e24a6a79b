// Package discover locates profile files on disk: the per-directory
// ".envlit/<name>.yaml" search, a glob-based listing for "profiles list" and
// shell completion, and an optional global settings file.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ProfileDir is the name of the directory, relative to the search root, that
// holds profile files.
const ProfileDir = ".envlit"

// DefaultProfileName is used when the caller does not name a profile.
const DefaultProfileName = "default"

// profileExtensions is tried in order; the first existing file wins.
var profileExtensions = []string{".yaml", ".yml"}

// FindProfile resolves a profile name to a file path under dir/.envlit. An
// empty name resolves to DefaultProfileName. Returns an empty string (no
// error) if the .envlit directory, or the named file within it, does not
// exist -- callers distinguish "not configured" from "misconfigured" this
// way, mirroring find_config_file's None return.
func FindProfile(dir, name string) (string, error) {
	if name == "" {
		name = DefaultProfileName
	}

	profileDir := filepath.Join(dir, ProfileDir)
	info, err := os.Stat(profileDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", profileDir, err)
	}
	if !info.IsDir() {
		return "", nil
	}

	for _, ext := range profileExtensions {
		candidate := filepath.Join(profileDir, name+ext)
		if fi, statErr := os.Stat(candidate); statErr == nil && !fi.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// ListProfiles globs dir/.envlit for every *.yaml/*.yml file and returns the
// profile names (file stem, no extension) in sorted order, deduplicated --
// a directory containing both foo.yaml and foo.yml counts as one profile.
func ListProfiles(dir string) ([]string, error) {
	profileDir := filepath.Join(dir, ProfileDir)
	if _, err := os.Stat(profileDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", profileDir, err)
	}

	matches, err := doublestar.Glob(os.DirFS(profileDir), "**/*.{yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("glob profiles in %s: %w", profileDir, err)
	}

	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		name := m[:len(m)-len(filepath.Ext(m))]
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
