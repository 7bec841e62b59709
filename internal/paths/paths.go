package paths

import (
	"os"
	"path/filepath"
)

const (
	// Description documents directory
	ConfigDir = "/etc/vbdfcheck"

	BoardFileName    = "board.xml"
	ScenarioFileName = "scenario.xml"
)

// GetConfigDir returns the directory holding the board and scenario
// description documents, checking environment variables first
func GetConfigDir() string {
	if dir := os.Getenv("VBDFCHECK_CONFIG_DIR"); dir != "" {
		return dir
	}
	return ConfigDir
}

// BoardPath returns the default board description location, checking
// environment variables first
func BoardPath() string {
	if p := os.Getenv("VBDFCHECK_BOARD"); p != "" {
		return p
	}
	return filepath.Join(GetConfigDir(), BoardFileName)
}

// ScenarioPath returns the default scenario description location, checking
// environment variables first
func ScenarioPath() string {
	if p := os.Getenv("VBDFCHECK_SCENARIO"); p != "" {
		return p
	}
	return filepath.Join(GetConfigDir(), ScenarioFileName)
}

// FileExists reports whether path resolves to a regular file. Symlinks are
// followed; a broken symlink or a directory does not count.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
