package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func bumpMtime(t *testing.T, path string) {
	t.Helper()
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func newTestApp(t *testing.T, path string) *App {
	t.Helper()
	return New(zap.NewNop(), path, 800, 600)
}

func TestStartupToleratesMissingFile(t *testing.T) {
	a := newTestApp(t, filepath.Join(t.TempDir(), "absent.ini"))
	if a.params.Scale != 1.0 || !a.params.VSync {
		t.Errorf("defaults not applied: %+v", a.params)
	}
}

func TestStartupDerivesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	writeFile(t, path, "[Triangle]\nScale=3\n")

	a := newTestApp(t, path)
	if a.params.Scale != 3 {
		t.Errorf("Scale: got %v, want 3", a.params.Scale)
	}
}

func TestMaybeReloadRespectsInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	writeFile(t, path, "[Triangle]\nScale=1\n")
	a := newTestApp(t, path)

	writeFile(t, path, "[Triangle]\nScale=4\n")
	bumpMtime(t, path)

	// Interval has not elapsed, no trigger: nothing happens.
	a.lastCheck = time.Now()
	a.maybeReload(false)
	if a.params.Scale != 1 {
		t.Errorf("Scale before interval elapsed: got %v, want 1", a.params.Scale)
	}

	// Forced trigger checks immediately and picks up the change.
	a.maybeReload(true)
	if a.params.Scale != 4 {
		t.Errorf("Scale after forced check: got %v, want 4", a.params.Scale)
	}
}

func TestMaybeReloadResetsClockEvenWithoutChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	writeFile(t, path, "[Triangle]\nScale=1\n")
	a := newTestApp(t, path)

	a.lastCheck = time.Now().Add(-time.Minute)
	before := a.lastCheck
	a.maybeReload(false) // file unchanged, so no reload...
	if !a.lastCheck.After(before) {
		t.Error("check clock not reset after a no-change check")
	}
}

func TestReloadNowBypassesTimestampGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	writeFile(t, path, "[Triangle]\nScale=1\n")
	a := newTestApp(t, path)

	// Rewrite the file but pin its mtime to the recorded one, so the
	// timer-driven path would see no change.
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	writeFile(t, path, "[Triangle]\nScale=9\n")
	if err := os.Chtimes(path, fi.ModTime(), fi.ModTime()); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	a.maybeReload(true)
	if a.params.Scale != 1 {
		t.Errorf("timer path should not have seen a change, Scale=%v", a.params.Scale)
	}

	a.reloadNow()
	if a.params.Scale != 9 {
		t.Errorf("Scale after explicit reload: got %v, want 9", a.params.Scale)
	}
}

func TestCommitClearsDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	a := newTestApp(t, path)

	a.store.SetDouble("Triangle", "Scale", 2.5)
	a.dirty = true
	a.commit()
	if a.dirty {
		t.Error("dirty still set after successful commit")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not written: %v", err)
	}
}

func TestCommitRetriesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "settings.ini")
	a := newTestApp(t, path)

	a.store.SetDouble("Triangle", "Scale", 2.5)
	a.dirty = true
	a.commit()
	if !a.dirty {
		t.Fatal("dirty cleared even though the save failed")
	}
	if a.lastErr == nil {
		t.Error("failed save left no error")
	}

	// Once the directory exists, the next dirty frame succeeds.
	if err := os.Mkdir(filepath.Join(dir, "missing"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	a.commit()
	if a.dirty {
		t.Error("dirty still set after retry succeeded")
	}
	if a.lastErr != nil {
		t.Errorf("error not cleared after retry: %v", a.lastErr)
	}
}

func TestCommitNoopWhenClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	a := newTestApp(t, path)

	a.commit()
	if _, err := os.Stat(path); err == nil {
		t.Error("commit wrote a file without any pending edits")
	}
}

func TestLayoutIgnoresZeroSize(t *testing.T) {
	a := newTestApp(t, filepath.Join(t.TempDir(), "settings.ini"))

	w, h := a.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Layout: got (%d, %d), want (1024, 768)", w, h)
	}

	// Minimized windows report zero; keep the previous dimensions.
	w, h = a.Layout(0, 0)
	if w != 1024 || h != 768 {
		t.Errorf("Layout after minimize: got (%d, %d), want (1024, 768)", w, h)
	}
}

func TestHelpers(t *testing.T) {
	if got := clamp01(-0.5); got != 0 {
		t.Errorf("clamp01(-0.5): got %v", got)
	}
	if got := clamp01(1.5); got != 1 {
		t.Errorf("clamp01(1.5): got %v", got)
	}
	if got := lerp(100, 2000, 0.5); got != 1050 {
		t.Errorf("lerp: got %v, want 1050", got)
	}
	if got := unlerp(100, 2000, 1050); got != 0.5 {
		t.Errorf("unlerp: got %v, want 0.5", got)
	}
	if got := unlerp(3, 3, 3); got != 0 {
		t.Errorf("unlerp on empty range: got %v, want 0", got)
	}
	if got := channelByte(2.0); got != 255 {
		t.Errorf("channelByte(2.0): got %d, want 255", got)
	}
	if got := channelByte(-1); got != 0 {
		t.Errorf("channelByte(-1): got %d, want 0", got)
	}
}
