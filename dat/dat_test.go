package dat

import (
	"errors"
	"testing"
)

func mustBuild(t *testing.T, keys map[string]int32) *DAT {
	t.Helper()
	b := NewBuilder()
	for k, v := range keys {
		if _, err := b.Insert(k, v); err != nil {
			t.Fatalf("Insert(%q) failed: %v", k, err)
		}
	}
	return b.Freeze()
}

func TestLookup(t *testing.T) {
	keys := map[string]int32{
		"cme":  1,
		"cmen": 2,
		"ban":  3,
		"bang": 4,
		"fa'i": 5,
		"jbo":  6,
		"z":    7,
	}
	d := mustBuild(t, keys)
	for k, want := range keys {
		got, ok := d.Lookup(k)
		if !ok || got != want {
			t.Fatalf("Lookup(%q) = %d, %v; want %d", k, got, ok, want)
		}
	}
	for _, k := range []string{"", "c", "cm", "ba", "banga", "fa", "x", "CME", "cmé"} {
		if _, ok := d.Lookup(k); ok {
			t.Fatalf("Lookup(%q) should fail", k)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	d := mustBuild(t, map[string]int32{"bang": 1})
	if !d.HasPrefix("ba") || !d.HasPrefix("bang") || !d.HasPrefix("") {
		t.Fatalf("expected prefixes of bang to be present")
	}
	if d.HasPrefix("bango") || d.HasPrefix("c") {
		t.Fatalf("unexpected prefix match")
	}
}

func TestInsertErrors(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Insert("", 1); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey for empty key, got %v", err)
	}
	if _, err := b.Insert("ba2", 1); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey for digit, got %v", err)
	}
	isNew, err := b.Insert("ban", 1)
	if err != nil || !isNew {
		t.Fatalf("first insert should be new, got %v, %v", isNew, err)
	}
	isNew, err = b.Insert("ban", 2)
	if err != nil || isNew {
		t.Fatalf("second insert should replace, got %v, %v", isNew, err)
	}
	if v, ok := b.Find("ban"); !ok || v != 2 {
		t.Fatalf("Find before freeze: got %d, %v", v, ok)
	}
	if b.Len() != 1 {
		t.Fatalf("expected 1 key, have %d", b.Len())
	}
	d := b.Freeze()
	if b.Freeze() != d {
		t.Fatalf("Freeze must be idempotent")
	}
	if _, err := b.Insert("cme", 3); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
	if v, ok := b.Find("ban"); !ok || v != 2 {
		t.Fatalf("Find after freeze: got %d, %v", v, ok)
	}
}

func TestStats(t *testing.T) {
	d := mustBuild(t, map[string]int32{"ab": 1, "abc": 2})
	stats := d.Stats()
	if stats.UsedSlots != 4 { // root, a, b, c
		t.Fatalf("expected 4 used slots, have %d", stats.UsedSlots)
	}
	if stats.TotalSlots < stats.UsedSlots || stats.MaxStateID <= 0 {
		t.Fatalf("inconsistent stats %+v", stats)
	}
	if fill := stats.FillRatio(); fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
	var empty *DAT
	if _, ok := empty.Lookup("ab"); ok {
		t.Fatalf("nil trie must not find anything")
	}
}
