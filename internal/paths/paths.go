// Package paths resolves the configuration directory, the data directory
// and the files footadmin keeps inside it.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration directory.
const AppName = "footadmin"

// DefaultDataDirName is the CWD-relative data directory used when nothing
// overrides it.
const DefaultDataDirName = ".footadmin-data"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "FOOTADMIN_CONFIG_DIR"
	EnvDataDir   = "FOOTADMIN_DATA_DIR"
)

// File name suffixes of the files kept next to each table.
const (
	TableExt      = ".csv"
	HistorySuffix = "_historial"
	TrashSuffix   = "_papelera"
	ExportName    = "footadmin.db"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/footadmin (fallback ~/.config/footadmin)
// macOS:   ~/Library/Application Support/footadmin
// Windows: %APPDATA%/footadmin
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > FOOTADMIN_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configValue > FOOTADMIN_DATA_DIR env > $(CWD)/.footadmin-data.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, dir := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// TableFile returns the backing file of the named table.
func TableFile(dataDir, table string) string {
	return filepath.Join(dataDir, table+TableExt)
}

// HistoryFile returns the history log of the named table.
func HistoryFile(dataDir, table string) string {
	return filepath.Join(dataDir, table+HistorySuffix+TableExt)
}

// TrashFile returns the trash bin of the named table.
func TrashFile(dataDir, table string) string {
	return filepath.Join(dataDir, table+TrashSuffix+TableExt)
}

// ExportFile returns the default SQLite export location.
func ExportFile(dataDir string) string {
	return filepath.Join(dataDir, ExportName)
}
