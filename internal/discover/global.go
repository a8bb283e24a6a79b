package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/providers/confmap"
	koanf "github.com/knadh/koanf/v2"
)

// GlobalSettings is the optional user-wide configuration envlit reads from
// ~/.config/envlit/config.toml (or the platform equivalent). Neither field
// is required; an absent file yields the zero value.
type GlobalSettings struct {
	// DefaultProfile names the profile to use when none is given on the
	// command line; when set, it is used in place of "default" even if a
	// ".envlit/default.yaml" exists.
	DefaultProfile string `toml:"default_profile" koanf:"default_profile"`
	// LogFormat is "text" or "json", the same values logging.ResolveLogFormat
	// understands.
	LogFormat string `toml:"log_format" koanf:"log_format"`
}

// DiscoverGlobalConfig returns the path to the global settings file following
// XDG Base Directory conventions, or "" if it does not exist.
//
// Priority:
//   - $XDG_CONFIG_HOME/envlit/config.toml (if XDG_CONFIG_HOME is set)
//   - ~/.config/envlit/config.toml (Linux/macOS)
//   - %APPDATA%\envlit\config.toml (Windows)
func DiscoverGlobalConfig() (string, error) {
	configDir, err := globalConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining global config dir: %w", err)
	}

	path := filepath.Join(configDir, "envlit", "config.toml")
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return "", nil
		}
		return "", fmt.Errorf("stat global config %s: %w", path, statErr)
	}
	return path, nil
}

func globalConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("user config dir: %w", err)
		}
		return dir, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home dir: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// LoadGlobalSettings reads the global settings file at path (if non-empty)
// and overlays ENVLIT_DEFAULT_PROFILE / ENVLIT_LOG_FORMAT environment
// variables on top via a koanf confmap provider. An empty path or a missing
// file is not an error; the env overlay still applies.
func LoadGlobalSettings(path string) (*GlobalSettings, error) {
	k := koanf.New(".")

	if path != "" {
		var raw map[string]any
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("parse global config %s: %w", path, err)
			}
		} else if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
			return nil, fmt.Errorf("merge global config %s: %w", path, err)
		}
	}

	if err := k.Load(confmap.Provider(envOverlay(), "."), nil); err != nil {
		return nil, fmt.Errorf("merge env overrides: %w", err)
	}

	return &GlobalSettings{
		DefaultProfile: k.String("default_profile"),
		LogFormat:      k.String("log_format"),
	}, nil
}

// envOverlay reads the ENVLIT_* environment variables that can override the
// global settings file, skipping anything unset.
func envOverlay() map[string]any {
	m := make(map[string]any)
	if v := os.Getenv("ENVLIT_DEFAULT_PROFILE"); v != "" {
		m["default_profile"] = v
	}
	if v := os.Getenv("ENVLIT_LOG_FORMAT"); v != "" {
		m["log_format"] = v
	}
	return m
}
