package state

import (
	"testing"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	p := newTestPane("one", "two", "three")
	p.Cursor = 2
	p.SetFilter("two", len("two"))

	if p.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", p.Filter)
	}
	if p.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", p.Cursor)
	}
	if len(p.Items) != 1 || p.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", p.Items)
	}

	p.SetFilter("", 0)
	if p.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", p.Cursor)
	}
	if p.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", p.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	p := newTestPane("alpha")

	if !p.InsertFilterText("ab") {
		t.Fatalf("expected insert to succeed")
	}
	if p.Filter != "ab" || p.FilterCursor != 2 {
		t.Fatalf("unexpected filter state: %q cursor %d", p.Filter, p.FilterCursor)
	}
	if !p.DeleteFilterRuneBackward() {
		t.Fatalf("expected delete to succeed")
	}
	if p.Filter != "a" || p.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete: %q cursor %d", p.Filter, p.FilterCursor)
	}
	if p.DeleteFilterRuneBackward() && p.DeleteFilterRuneBackward() {
		t.Fatalf("expected delete at start to report no change")
	}
}

func TestClearFilter(t *testing.T) {
	p := newTestPane("one", "two")
	p.Cursor = 1
	p.SetFilter("on", 2)
	if len(p.Items) != 1 {
		t.Fatalf("expected one match, got %d", len(p.Items))
	}

	if !p.ClearFilter() {
		t.Fatalf("expected clear to report a change")
	}
	if len(p.Items) != 2 || p.Cursor != 1 {
		t.Fatalf("expected full list and restored cursor, got %d items cursor %d", len(p.Items), p.Cursor)
	}
	if p.ClearFilter() {
		t.Fatalf("expected clear on empty filter to be a no-op")
	}
}

func TestFilterItemsFallsBackToSubstring(t *testing.T) {
	p := newTestPane("build:all", "build:one", "deploy")
	p.SetFilter("build", len("build"))
	if len(p.Items) != 2 {
		t.Fatalf("expected two matches, got %#v", p.Items)
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	items := newTestPane("open-recent", "open", "reopen").Full

	if idx := BestMatchIndex(items, "open"); idx != 1 {
		t.Fatalf("expected exact match at 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "ope"); idx != 0 {
		t.Fatalf("expected prefix match at 0, got %d", idx)
	}
	if idx := BestMatchIndex(items, ""); idx != 0 {
		t.Fatalf("expected empty query to pick 0, got %d", idx)
	}
}
