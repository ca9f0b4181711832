package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if !DirectoryExists(testDir) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if !DirectoryExists(tempDir) {
		t.Error("Expected temp dir to exist")
	}
	if DirectoryExists(file) {
		t.Error("A regular file is not a directory")
	}
	if DirectoryExists(filepath.Join(tempDir, "missing")) {
		t.Error("Missing path should not exist")
	}
}

func TestExpandPath_Home(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("No home directory: %v", err)
	}
	resolvedHome, err := filepath.EvalSymlinks(homeDir)
	if err != nil {
		resolvedHome = homeDir
	}

	result, err := ExpandPath("~")
	if err != nil {
		t.Fatalf("Failed to expand ~: %v", err)
	}
	if result != resolvedHome {
		t.Errorf("Expected %s, got %s", resolvedHome, result)
	}

	result, err = ExpandPath("~/qr-creator-test-missing")
	if err != nil {
		t.Fatalf("Failed to expand ~/...: %v", err)
	}
	if !strings.HasSuffix(result, "qr-creator-test-missing") || !filepath.IsAbs(result) {
		t.Errorf("Unexpected expansion: %s", result)
	}
}

func TestExpandPath_Relative(t *testing.T) {
	result, err := ExpandPath(".")
	if err != nil {
		t.Fatalf("Failed to expand '.': %v", err)
	}
	if !filepath.IsAbs(result) {
		t.Errorf("Expected absolute path, got %s", result)
	}

	empty, err := ExpandPath("")
	if err != nil {
		t.Fatalf("Failed to expand empty path: %v", err)
	}
	if empty != result {
		t.Errorf("Empty path should expand like '.', got %s and %s", empty, result)
	}
}

func TestExpandPath_Symlink(t *testing.T) {
	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	target := filepath.Join(tempDir, "target")
	link := filepath.Join(tempDir, "link")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("Failed to create target: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	result, err := ExpandPath(link)
	if err != nil {
		t.Fatalf("Failed to expand symlink: %v", err)
	}
	if result != target {
		t.Errorf("Expected %s, got %s", target, result)
	}
}

func TestExpandPath_Nonexistent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "a", "b")

	result, err := ExpandPath(missing)
	if err != nil {
		t.Fatalf("Nonexistent path should be tolerated, got %v", err)
	}
	if filepath.Base(result) != "b" || !filepath.IsAbs(result) {
		t.Errorf("Unexpected result for missing path: %s", result)
	}
}

func TestOpenFolder_NonExistentDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent")

	err := OpenFolder(missing)
	if err == nil {
		t.Fatal("Expected error for non-existent directory, got nil")
	}

	if !strings.Contains(err.Error(), "directory does not exist:") {
		t.Errorf("Error message should contain 'directory does not exist:', got: %v", err)
	}
}
