// Package where resolves the filesystem locations used by anitrack.
package where

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	App = "anitrack"

	// EnvConfigPath overrides the configuration directory.
	EnvConfigPath = "ANITRACK_CONFIG_PATH"

	DatabaseFile = "anime_tracker.db"
)

var fs afero.Fs = afero.NewOsFs()

// Fs returns the filesystem every location is created on.
func Fs() afero.Fs {
	return fs
}

// SetFs swaps the backing filesystem. Used by tests.
func SetFs(f afero.Fs) {
	fs = f
}

func ensureDir(path string) (string, error) {
	if err := fs.MkdirAll(path, os.ModePerm); err != nil {
		return "", err
	}
	return path, nil
}

// Config returns the configuration directory, creating it if needed.
func Config() (string, error) {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return ensureDir(filepath.Join(base, App))
}

// Logs returns the directory log files are written to.
func Logs() (string, error) {
	dir, err := Config()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(dir, "logs"))
}

// Database returns the default watchlist database path.
func Database() (string, error) {
	dir, err := Config()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFile), nil
}

// EnsureParent creates the directory that will hold path.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	_, err := ensureDir(dir)
	return err
}
