package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetConfigDir_EnvOverride(t *testing.T) {
	t.Setenv("VBDFCHECK_CONFIG_DIR", "/tmp/custom")

	if got := GetConfigDir(); got != "/tmp/custom" {
		t.Errorf("expected /tmp/custom, got %s", got)
	}
}

func TestGetConfigDir_Default(t *testing.T) {
	t.Setenv("VBDFCHECK_CONFIG_DIR", "")

	if got := GetConfigDir(); got != ConfigDir {
		t.Errorf("expected %s, got %s", ConfigDir, got)
	}
}

func TestBoardPath(t *testing.T) {
	t.Setenv("VBDFCHECK_CONFIG_DIR", "/tmp/custom")
	t.Setenv("VBDFCHECK_BOARD", "")

	want := filepath.Join("/tmp/custom", BoardFileName)
	if got := BoardPath(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	t.Setenv("VBDFCHECK_BOARD", "/somewhere/else.xml")
	if got := BoardPath(); got != "/somewhere/else.xml" {
		t.Errorf("expected env override, got %s", got)
	}
}

func TestScenarioPath(t *testing.T) {
	t.Setenv("VBDFCHECK_CONFIG_DIR", "/tmp/custom")
	t.Setenv("VBDFCHECK_SCENARIO", "")

	want := filepath.Join("/tmp/custom", ScenarioFileName)
	if got := ScenarioPath(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFileExists_ResolvesSymlinks(t *testing.T) {
	tmpDir := t.TempDir()

	// Create a real file
	realFile := filepath.Join(tmpDir, "realfile")
	if err := os.WriteFile(realFile, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	// Create a symlink to the file
	symlinkPath := filepath.Join(tmpDir, "linkfile")
	if err := os.Symlink(realFile, symlinkPath); err != nil {
		t.Fatal(err)
	}

	// FileExists should return true for the symlink
	if !FileExists(symlinkPath) {
		t.Error("FileExists should return true for symlink to existing file")
	}

	// FileExists should return true for the real file
	if !FileExists(realFile) {
		t.Error("FileExists should return true for real file")
	}
}

func TestFileExists_FailsForBrokenSymlink(t *testing.T) {
	tmpDir := t.TempDir()

	// Create a symlink to a non-existent target
	brokenLink := filepath.Join(tmpDir, "broken")
	if err := os.Symlink("/nonexistent/target", brokenLink); err != nil {
		t.Fatal(err)
	}

	// FileExists should return false for broken symlink
	if FileExists(brokenLink) {
		t.Error("FileExists should return false for broken symlink")
	}
}

func TestFileExists_FailsForDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	// Create a directory
	dirPath := filepath.Join(tmpDir, "testdir")
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		t.Fatal(err)
	}

	// FileExists should return false for directory
	if FileExists(dirPath) {
		t.Error("FileExists should return false for directory")
	}
}
