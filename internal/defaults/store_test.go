package defaults

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/apiarycd/gg/pkg/badgerfx"
	"go.uber.org/zap/zaptest"
)

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx); !errors.Is(err, ErrNoDefault) {
		t.Fatalf("Expected ErrNoDefault, got %v", err)
	}

	if err := store.Set(ctx, "/home/dev/src"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := store.Set(ctx, "/home/dev/work"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	dir, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if dir != "/home/dev/work" {
		t.Errorf("Expected /home/dev/work, got %s", dir)
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gg", "default_dir")
	testStore(t, NewFileStore(path, zaptest.NewLogger(t)))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "/home/dev/work\n" {
		t.Errorf("Expected single line file, got %q", string(data))
	}
}

func TestFileStore_Blank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default_dir")
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path, zaptest.NewLogger(t))
	if _, err := store.Get(context.Background()); !errors.Is(err, ErrNoDefault) {
		t.Errorf("Expected ErrNoDefault, got %v", err)
	}
}

func TestBadgerStore(t *testing.T) {
	logger := zaptest.NewLogger(t)
	handle := badgerfx.NewHandle(badgerfx.Config{Dir: t.TempDir()}, logger)
	t.Cleanup(func() {
		if err := handle.Close(); err != nil {
			t.Error(err)
		}
	})

	testStore(t, NewBadgerStore(handle, logger))
}

func TestNewStore(t *testing.T) {
	logger := zaptest.NewLogger(t)
	handle := badgerfx.NewHandle(badgerfx.Config{Dir: t.TempDir()}, logger)

	if _, ok := NewStore(Config{Backend: BackendFile, File: "x"}, handle, logger).(*FileStore); !ok {
		t.Error("Expected file store")
	}

	if _, ok := NewStore(Config{Backend: BackendBadger}, handle, logger).(*BadgerStore); !ok {
		t.Error("Expected badger store")
	}
}
