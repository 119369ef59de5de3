package resourceio

import (
	"errors"
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestLoaderSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	l := NewLoader(nil)
	if err := l.Save(path, &sample{Name: "a", Value: 1}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var got sample
	if err := l.Load(path, &got); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Name != "a" || got.Value != 1 {
		t.Errorf("unexpected round trip: %+v", got)
	}
}

func TestLoaderNotFound(t *testing.T) {
	l := NewLoader(nil)
	var got sample
	err := l.Load(filepath.Join(t.TempDir(), "missing.json"), &got)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
