package runlock

import (
	"errors"
	"path/filepath"
	"testing"

	"sortdir/internal/services"
)

func TestAcquireRejectsSecondHolder(t *testing.T) {
	lockDir := filepath.Join(t.TempDir(), "locks")
	root := "/srv/inbox"

	first, err := Acquire(lockDir, root)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	t.Cleanup(func() { _ = first.Release() })

	if _, err := Acquire(lockDir, root); !errors.Is(err, services.ErrLocked) {
		t.Fatalf("expected ErrLocked for second holder, got %v", err)
	}

	other, err := Acquire(lockDir, "/srv/other")
	if err != nil {
		t.Fatalf("Acquire for different root: %v", err)
	}
	if err := other.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	again, err := Acquire(lockDir, root)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	_ = again.Release()
}

func TestPathForIsStable(t *testing.T) {
	a := PathFor("/locks", "/srv/inbox/")
	b := PathFor("/locks", "/srv/inbox")
	if a != b {
		t.Fatalf("expected cleaned roots to share a lock file: %s vs %s", a, b)
	}
	if filepath.Dir(a) != "/locks" {
		t.Fatalf("lock file outside lock dir: %s", a)
	}
	if PathFor("/locks", "/srv/other") == a {
		t.Fatal("distinct roots must not share a lock file")
	}
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	if err := l.Release(); err != nil {
		t.Fatalf("Release on nil: %v", err)
	}
}
