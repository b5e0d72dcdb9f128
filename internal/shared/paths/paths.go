package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Layout of the client's local state, relative to the root directory.
const (
	DirName      = ".shoplist"
	SettingsName = "settings.toml"
)

// HomeEnv overrides the root directory when set.
const HomeEnv = "SHOPLIST_HOME"

// Root returns the directory holding local state: $SHOPLIST_HOME, else
// ~/.shoplist, else ./.shoplist when no home directory is known.
func Root() string {
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return filepath.Clean(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DirName
	}
	return filepath.Join(home, DirName)
}

// SettingsFile returns the default settings document path.
func SettingsFile() string {
	return filepath.Join(Root(), SettingsName)
}

// Resolve returns path cleaned, or the default settings file when blank.
// A leading ~ expands to the home directory.
func Resolve(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return SettingsFile()
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return filepath.Clean(path)
}

// ValidateSettingsPath rejects paths the file store cannot write to.
func ValidateSettingsPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("settings path cannot be empty")
	}
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("settings path %q names a directory", path)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("settings path %q is a directory", path)
	}
	return nil
}
