package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName  = "hnefatafl"
	fileName = "hnefatafl.yaml"
)

// ConfigDir returns the platform-specific configuration directory.
// - macOS: ~/Library/Application Support/hnefatafl/
// - Linux: $XDG_CONFIG_HOME/hnefatafl/ or ~/.config/hnefatafl/
// - Windows: %APPDATA%/hnefatafl/
func ConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_CONFIG_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".config")
		}
	}

	return filepath.Join(baseDir, appName), nil
}

// SearchPaths lists the places a config file is looked for, in order.
func SearchPaths() []string {
	var paths []string
	if dir, err := ConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, fileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName, fileName))
	}
	return append(paths, filepath.Join("etc", fileName))
}

// Find returns the first existing file on SearchPaths, or "".
func Find() string {
	for _, p := range SearchPaths() {
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
