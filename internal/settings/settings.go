// SPDX-License-Identifier: MPL-2.0

// Package settings handles the user-level CLI settings file using Viper.
// These are preferences of the person running wpmoo (verbosity, colors),
// kept in the platform config directory and distinct from the per-project
// configuration in internal/config.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "wpmoo"
	// fileName is the settings file name without extension.
	fileName = "config"
)

// Settings are the user-level CLI preferences.
type Settings struct {
	UI UISettings `mapstructure:"ui"`
}

// UISettings control terminal output behavior.
type UISettings struct {
	Verbose     bool   `mapstructure:"verbose"`
	ColorScheme string `mapstructure:"color_scheme"`
}

// Default returns the built-in settings used when no file exists.
func Default() *Settings {
	return &Settings{
		UI: UISettings{
			Verbose:     false,
			ColorScheme: "auto",
		},
	}
}

// configDirOverride lets tests redirect the config directory, since
// os.UserHomeDir does not reliably respect HOME on all platforms.
var configDirOverride string

// SetConfigDirOverride redirects ConfigDir, primarily for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides.
func Reset() {
	configDirOverride = ""
}

// ConfigDir returns the wpmoo settings directory using platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on
// macOS, and $XDG_CONFIG_HOME (default ~/.config) elsewhere.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support")
	default:
		dir = os.Getenv("XDG_CONFIG_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolving home directory: %w", err)
			}
			dir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(dir, AppName), nil
}

// Load reads the settings file from the config directory. A missing file
// yields the defaults without error; a malformed file yields the defaults
// plus the parse error so the caller can warn without aborting.
func Load(fsys afero.Fs) (*Settings, error) {
	dir, err := ConfigDir()
	if err != nil {
		return Default(), err
	}

	v := viper.New()
	v.SetFs(fsys)
	defaults := Default()
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("reading settings file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return defaults, fmt.Errorf("parsing settings file: %w", err)
	}
	return &s, nil
}
