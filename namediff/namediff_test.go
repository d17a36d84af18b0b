package namediff

import (
	"bytes"
	"io"
	"log/slog"
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/tarnlang/tarnir/internal/fixtures"
	"github.com/tarnlang/tarnir/ir"
	"github.com/tarnlang/tarnir/loader"
)

func load(t *testing.T, bundle string) *ir.Program {
	t.Helper()
	opts := loader.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	p, err := loader.LoadBundle([]byte(bundle), opts)
	if err != nil {
		t.Fatalf("LoadBundle() error = %v", err)
	}
	return p
}

func TestInventory(t *testing.T) {
	inv := Inventory(load(t, fixtures.Bundle))

	if !sort.StringsAreSorted(inv) {
		t.Error("Inventory() should be sorted")
	}

	want := []string{
		"Library\tcore",
		"Library\tlibrary pkg:geo/geo.tarn",
		"Class\tcore::Object",
		"Procedure\tcore::Object.toString",
		"Procedure\tcore::List.add",
		"Class\tlibrary pkg:geo/geo.tarn::Point",
		"Field\tlibrary pkg:geo/geo.tarn::Point._hash",
		"Constructor\tlibrary pkg:geo/geo.tarn::Point.new",
		"Constructor\tlibrary pkg:geo/geo.tarn::Point.origin",
		"Procedure\tlibrary pkg:geo/geo.tarn::Point.magnitude",
		"Procedure\tlibrary pkg:geo/geo.tarn::Point.magnitude=",
		"Extension\tlibrary pkg:geo/geo.tarn::PointList",
		"Typedef\tlibrary pkg:geo/geo.tarn::Transform",
		"Field\tlibrary pkg:geo/geo.tarn::origin",
		"Procedure\tlibrary pkg:geo/geo.tarn::_flipAll",
	}
	have := toSet(inv)
	for _, ln := range want {
		if !have[ln] {
			t.Errorf("Inventory() is missing %q", ln)
		}
	}
}

func TestInventory_Deterministic(t *testing.T) {
	first := Inventory(load(t, fixtures.Bundle))
	second := Inventory(load(t, fixtures.Bundle))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Inventory() mismatch across loads (-first +second):\n%s", diff)
	}
}

func TestInventory_ManifestOrderIrrelevant(t *testing.T) {
	arc := txtar.Parse([]byte(fixtures.Bundle))
	if len(arc.Files) < 2 {
		t.Fatalf("fixture bundle has %d manifests, want at least 2", len(arc.Files))
	}
	slices.Reverse(arc.Files)
	reversed := string(txtar.Format(arc))

	forward := Inventory(load(t, fixtures.Bundle))
	backward := Inventory(load(t, reversed))
	if diff := cmp.Diff(forward, backward); diff != "" {
		t.Errorf("Inventory() depends on manifest order (-forward +backward):\n%s", diff)
	}
	if !Compare(forward, backward).Empty() {
		t.Error("Compare() reports changes between reorderings of the same bundle")
	}
}

func TestCompare(t *testing.T) {
	before := []string{"a", "b", "c"}
	after := []string{"b", "c", "d"}

	r := Compare(before, after)
	if diff := cmp.Diff([]string{"d"}, r.Added); diff != "" {
		t.Errorf("Added mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a"}, r.Removed); diff != "" {
		t.Errorf("Removed mismatch (-want +got):\n%s", diff)
	}
	if r.Empty() {
		t.Error("Empty() = true for a changed surface")
	}

	if !Compare(before, before).Empty() {
		t.Error("Empty() = false for identical inventories")
	}
}

func TestCompare_Programs(t *testing.T) {
	const v1 = `-- lib.yaml --
uri: pkg:demo/demo.tarn
classes:
  - name: Counter
    fields:
      - name: value
        type: {kind: dynamic}
    procedures:
      - name: increment
        function:
          returnType: {kind: void}
`
	const v2 = `-- lib.yaml --
uri: pkg:demo/demo.tarn
classes:
  - name: Counter
    procedures:
      - name: increment
        function:
          returnType: {kind: void}
      - name: reset
        function:
          returnType: {kind: void}
`
	r := Compare(Inventory(load(t, v1)), Inventory(load(t, v2)))

	wantAdded := []string{"Procedure\tlibrary pkg:demo/demo.tarn::Counter.reset"}
	wantRemoved := []string{"Field\tlibrary pkg:demo/demo.tarn::Counter.value"}
	if diff := cmp.Diff(wantAdded, r.Added); diff != "" {
		t.Errorf("Added mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRemoved, r.Removed); diff != "" {
		t.Errorf("Removed mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteUnified(t *testing.T) {
	before := []string{"Class\tcore::A", "Class\tcore::B", "Class\tcore::C"}
	after := []string{"Class\tcore::A", "Class\tcore::C", "Class\tcore::D"}

	var buf bytes.Buffer
	if err := WriteUnified(&buf, before, after, nil); err != nil {
		t.Fatalf("WriteUnified() error = %v", err)
	}
	want := " Class\tcore::A\n-Class\tcore::B\n Class\tcore::C\n+Class\tcore::D\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteUnified() = %q, want %q", got, want)
	}
}

func TestWriteUnified_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteUnified(&buf, nil, nil, nil); err != nil {
		t.Fatalf("WriteUnified() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteUnified() with empty inventories = %q, want empty", buf.String())
	}
}

func TestWriteUnified_AllAdded(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteUnified(&buf, nil, []string{"x", "y"}, nil); err != nil {
		t.Fatalf("WriteUnified() error = %v", err)
	}
	if got := buf.String(); got != "+x\n+y\n" {
		t.Errorf("WriteUnified() = %q, want %q", got, "+x\n+y\n")
	}
}
