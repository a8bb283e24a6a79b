package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML profile at path, normalizes it, and resolves its
// inheritance chain (if any) into one flattened Profile. It is the sole
// entry point external callers use; resolveChain does the recursive work.
func Load(path string) (*Profile, error) {
	resolved, err := resolveChain(path, nil)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// resolveChain loads the profile at path, then, if it declares `extends`,
// recursively loads and merges the parent beneath it. visited holds the
// absolute paths already on the current recursion stack, so a cycle is
// reported with its full path rather than overflowing the stack.
func resolveChain(path string, visited []string) (*Profile, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve profile path %s: %w", path, err)
	}

	for _, v := range visited {
		if v == absPath {
			cycle := append(append([]string{}, visited...), absPath)
			return nil, fmt.Errorf("circular profile inheritance: %v", cycle)
		}
	}
	visited = append(visited, absPath)

	data, err := os.ReadFile(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("profile not found: %s", path)
		}
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var raw rawProfile
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse profile %s: %w", path, err)
		}
	}

	child, err := normalize(&raw, path)
	if err != nil {
		return nil, err
	}

	if raw.Extends == "" {
		return child, nil
	}

	parentPath := raw.Extends
	if !filepath.IsAbs(parentPath) {
		parentPath = filepath.Join(filepath.Dir(absPath), parentPath)
	}

	parent, err := resolveChain(parentPath, visited)
	if err != nil {
		return nil, fmt.Errorf("resolving parent %q for profile %s: %w", raw.Extends, path, err)
	}

	slog.Debug("profile inheritance resolved", "profile", path, "extends", parentPath)

	return merge(parent, child), nil
}
