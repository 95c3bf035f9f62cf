package runtime

import (
	"context"
	"testing"

	cfgpkg "github.com/alkapone312/shared-checklist/internal/config"
	pebblestore "github.com/alkapone312/shared-checklist/internal/storage/pebble"
)

func TestOpenAndHealth(t *testing.T) {
	rt, err := Open(Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways, Config: cfgpkg.Default()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })

	if err := rt.CheckHealth(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
	if rt.DB() == nil || rt.Log() == nil {
		t.Fatalf("expected wired db and log")
	}
	if rt.Config().RetentionSeconds != cfgpkg.Default().RetentionSeconds {
		t.Fatalf("config not carried")
	}
}

func TestOpenFailsWithoutDataDir(t *testing.T) {
	if _, err := Open(Options{}); err == nil {
		t.Fatalf("expected error")
	}
}
