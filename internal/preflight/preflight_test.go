package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sortdir/internal/services"
	"sortdir/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_Empty(t *testing.T) {
	if result := CheckDirectoryAccess("test", "  "); result.Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestRunAllAcceptsRootNamedLikeOutputFolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"images", "archives", "MY_OTHER"} {
		root := filepath.Join(testsupport.BaseDir(cfg), name)
		if err := os.MkdirAll(root, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := FirstFailure(RunAll(cfg, root)); err != nil {
			t.Errorf("root %q rejected: %v", name, err)
		}
	}
}

func TestRunAllAndFirstFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	root := filepath.Join(testsupport.BaseDir(cfg), "inbox")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}

	results := RunAll(cfg, root)
	if len(results) != 2 {
		t.Fatalf("expected 2 results without log dir, got %d", len(results))
	}
	if err := FirstFailure(results); err != nil {
		t.Fatalf("expected all checks to pass: %v", err)
	}

	err := FirstFailure(RunAll(cfg, filepath.Join(testsupport.BaseDir(cfg), "missing")))
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing root, got %v", err)
	}
}

func TestRunAllChecksLogDir(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLogDir())
	root := t.TempDir()

	if err := FirstFailure(RunAll(cfg, root)); err == nil {
		t.Fatal("expected failure before directories exist")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	results := RunAll(cfg, root)
	if len(results) != 3 {
		t.Fatalf("expected 3 results with log dir, got %d", len(results))
	}
	if err := FirstFailure(results); err != nil {
		t.Fatalf("expected all checks to pass: %v", err)
	}
}
