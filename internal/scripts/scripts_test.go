package scripts

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStore_List_Embedded(t *testing.T) {
	store := NewStore("")

	slugs, err := store.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	want := []string{"constipacao", "diarreia", "dor_cabeca", "dor_lombar", "febre", "tosse"}
	if !reflect.DeepEqual(slugs, want) {
		t.Errorf("List() = %v, want %v", slugs, want)
	}
}

func TestStore_Source_Embedded(t *testing.T) {
	store := NewStore("")

	for _, slug := range []string{"tosse", "febre", "diarreia", "dor_cabeca", "constipacao", "dor_lombar"} {
		src, err := store.Source(slug)
		if err != nil {
			t.Fatalf("Source(%s) error: %v", slug, err)
		}
		if len(src) == 0 {
			t.Errorf("Source(%s) returned empty script", slug)
		}
	}
}

func TestStore_Source_NotFound(t *testing.T) {
	store := NewStore("")

	_, err := store.Source("enxaqueca")
	if !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("expected ErrModuleNotFound, got %v", err)
	}
}

func TestStore_Source_RejectsBadSlug(t *testing.T) {
	store := NewStore("")

	for _, slug := range []string{"../etc/passwd", "Tosse", "", "a b", "1abc"} {
		if _, err := store.Source(slug); !errors.Is(err, ErrModuleNotFound) {
			t.Errorf("Source(%q): expected ErrModuleNotFound, got %v", slug, err)
		}
	}
}

func TestStore_DiskOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "gripe"), 0755); err != nil {
		t.Fatal(err)
	}
	script := []byte("package main\n\nfunc main() {}\n")
	if err := os.WriteFile(filepath.Join(dir, "gripe", "main.go"), script, 0644); err != nil {
		t.Fatal(err)
	}
	// A directory with an invalid slug must be ignored
	if err := os.MkdirAll(filepath.Join(dir, "Not-A-Slug"), 0755); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)

	slugs, err := store.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if !reflect.DeepEqual(slugs, []string{"gripe"}) {
		t.Errorf("List() = %v, want [gripe]", slugs)
	}

	src, err := store.Source("gripe")
	if err != nil {
		t.Fatalf("Source() error: %v", err)
	}
	if !reflect.DeepEqual(src, script) {
		t.Error("Source() returned unexpected content")
	}

	if _, err := store.Source("tosse"); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("disk store must not fall back to embedded corpus, got %v", err)
	}
}
