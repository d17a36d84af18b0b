package tarnir_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tarnlang/tarnir"
	"github.com/tarnlang/tarnir/internal/fixtures"
)

func TestLoad(t *testing.T) {
	p, err := tarnir.Load([]byte(fixtures.Bundle), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(p.Libraries); got != 2 {
		t.Errorf("expected 2 libraries, got %d", got)
	}
	if p.LibraryByURI("tarn:core") == nil {
		t.Error("expected tarn:core to be loaded")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.txtar")
	if err := os.WriteFile(path, []byte(fixtures.Bundle), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := tarnir.LoadFile(path, nil)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := len(p.Libraries); got != 2 {
		t.Errorf("expected 2 libraries, got %d", got)
	}
}
