package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessmate"

// GetDataDir returns the application data directory, creating it if needed.
// A non-empty override is used as is. Otherwise:
// - macOS: ~/Library/Application Support/chessmate/
// - Linux: $XDG_DATA_HOME/chessmate/ or ~/.local/share/chessmate/
// - Windows: %APPDATA%/chessmate/
func GetDataDir(override string) (string, error) {
	if override != "" {
		return ensureDir(override)
	}

	base, err := platformBaseDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(base, appName))
}

// GetDatabaseDir returns the directory holding the BadgerDB files.
func GetDatabaseDir(override string) (string, error) {
	dataDir, err := GetDataDir(override)
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(dataDir, "db"))
}

func platformBaseDir() (string, error) {
	var env string
	var fallback []string

	switch runtime.GOOS {
	case "darwin":
		fallback = []string{"Library", "Application Support"}
	case "windows":
		env = "APPDATA"
		fallback = []string{"AppData", "Roaming"}
	default:
		env = "XDG_DATA_HOME"
		fallback = []string{".local", "share"}
	}

	if env != "" {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
