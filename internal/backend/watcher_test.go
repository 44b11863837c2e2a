package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeMenuFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write menu file: %v", err)
	}
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed early")
		}
		return evt
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return Event{}
}

func TestWatcherEmitsInitialAndChangedDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	writeMenuFile(t, path, "menus:\n  - id: file\n    label: File\n")

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	evt := nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("initial event: %v", evt.Err)
	}
	if len(evt.Def.Menus) != 1 || evt.Def.Menus[0].ID != "file" {
		t.Fatalf("unexpected definition: %+v", evt.Def)
	}

	writeMenuFile(t, path, "menus:\n  - id: file\n    label: File\n  - id: edit\n    label: Edit\n")
	evt = nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("changed event: %v", evt.Err)
	}
	if len(evt.Def.Menus) != 2 {
		t.Fatalf("expected 2 menus after change, got %d", len(evt.Def.Menus))
	}
}

func TestWatcherReportsReadAndParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if evt := nextEvent(t, w); evt.Err == nil {
		t.Fatalf("expected read error for missing file")
	}

	writeMenuFile(t, path, "menus:\n  - label: broken, no id\n")
	if evt := nextEvent(t, w); evt.Err == nil {
		t.Fatalf("expected parse error for invalid definition")
	}
}

func TestWatcherStopDrainsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	writeMenuFile(t, path, "menus:\n  - id: file\n    label: File\n")

	w := NewWatcher(path, 10*time.Millisecond)
	nextEvent(t, w)

	w.Stop()
	w.Wait()

	for evt := range w.Events() {
		_ = evt // drain whatever was buffered before cancellation
	}
}
