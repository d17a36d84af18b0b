package ir

import (
	"strings"
	"sync"
	"testing"
)

func TestCanonicalName_Root(t *testing.T) {
	root := NewRoot()
	if !root.IsRoot() {
		t.Error("NewRoot().IsRoot() = false, want true")
	}
	if root.Name() != "" {
		t.Errorf("root.Name() = %q, want empty", root.Name())
	}
	if root.Parent() != nil {
		t.Error("root.Parent() should be nil")
	}
	if root.Depth() != 0 {
		t.Errorf("root.Depth() = %d, want 0", root.Depth())
	}
	if got := root.String(); got != "<root>" {
		t.Errorf("root.String() = %q, want %q", got, "<root>")
	}
}

func TestCanonicalName_ChildIdempotent(t *testing.T) {
	root := NewRoot()
	a := root.Child("foo")
	b := root.Child("foo")
	if a != b {
		t.Error("Child(foo) twice returned distinct nodes")
	}
	if len(root.Children()) != 1 {
		t.Errorf("root has %d children, want 1", len(root.Children()))
	}
	if a.Parent() != root {
		t.Error("child.Parent() != root")
	}
	if a.Name() != "foo" {
		t.Errorf("child.Name() = %q, want %q", a.Name(), "foo")
	}
}

func TestCanonicalName_PeekChild(t *testing.T) {
	root := NewRoot()
	if root.PeekChild("missing") != nil {
		t.Error("PeekChild on empty node should return nil")
	}
	created := root.Child("lib")
	if got := root.PeekChild("lib"); got != created {
		t.Error("PeekChild should return the interned node")
	}
}

func TestCanonicalName_PathAndDepth(t *testing.T) {
	root := NewRoot()
	member := root.Child("tarn:core").Child("Duration").Child("inSeconds")
	if member.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", member.Depth())
	}
	want := []string{"tarn:core", "Duration", "inSeconds"}
	got := member.Path()
	if len(got) != len(want) {
		t.Fatalf("Path() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Path()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if s := member.String(); s != "tarn:core::Duration::inSeconds" {
		t.Errorf("String() = %q", s)
	}
}

func TestCanonicalName_ChildFromQualifiedName(t *testing.T) {
	root := NewRoot()
	lib := root.Child("pkg:app/app.tarn")
	cls := lib.Child("Widget")

	pub := cls.ChildFromQualifiedName(NewName("render"))
	if pub.Parent() != cls {
		t.Error("public name should intern directly under the container")
	}

	priv := cls.ChildFromQualifiedName(NewPrivateName("_state", "pkg:app/app.tarn"))
	if priv.Parent() == cls {
		t.Error("private name should intern one level deeper")
	}
	if priv.Parent().Name() != "pkg:app/app.tarn" {
		t.Errorf("private bucket = %q, want library URI", priv.Parent().Name())
	}
	if priv.Parent().Parent() != cls {
		t.Error("private bucket should hang off the container")
	}
	if priv.Depth() != 4 {
		t.Errorf("private member depth = %d, want 4", priv.Depth())
	}
}

func TestCanonicalName_ChildrenSorted(t *testing.T) {
	root := NewRoot()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		root.Child(name)
	}
	got := root.Children()
	want := []string{"alpha", "mid", "zeta"}
	for i, child := range got {
		if child.Name() != want[i] {
			t.Errorf("Children()[%d] = %q, want %q", i, child.Name(), want[i])
		}
	}
}

func TestCanonicalName_Walk(t *testing.T) {
	root := NewRoot()
	root.Child("lib").Child("B")
	root.Child("lib").Child("A")

	var visited []string
	root.Walk(func(c *CanonicalName) {
		visited = append(visited, c.String())
	})
	want := []string{"<root>", "lib", "lib::A", "lib::B"}
	if len(visited) != len(want) {
		t.Fatalf("Walk visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Walk order[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestCanonicalName_ConcurrentIntern(t *testing.T) {
	root := NewRoot()
	lib := root.Child("tarn:core")

	var wg sync.WaitGroup
	results := make([]*CanonicalName, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lib.Child("Object")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent interning produced distinct nodes")
		}
	}
	if len(lib.Children()) != 1 {
		t.Errorf("lib has %d children, want 1", len(lib.Children()))
	}
}

func TestCanonicalName_ReferenceInterning(t *testing.T) {
	root := NewRoot()
	cn := root.Child("tarn:core").Child("Object")

	r1 := cn.Reference()
	r2 := cn.Reference()
	if r1 != r2 {
		t.Error("Reference() should return the interned reference both times")
	}
	if r1.CanonicalName() != cn {
		t.Error("reference should carry its canonical name")
	}
	if r1.IsLinked() {
		t.Error("fresh reference should be unlinked")
	}
}

func TestCanonicalName_BindLinksExistingReferences(t *testing.T) {
	root := NewRoot()
	cn := root.Child("tarn:core").Child("Object")

	// A reference taken before the declaration loads.
	early := cn.Reference()
	if _, ok := early.Resolve(); ok {
		t.Fatal("reference should not resolve before binding")
	}

	obj := NewClass("Object")
	if err := cn.Bind(obj); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	node, ok := early.Resolve()
	if !ok {
		t.Fatal("previously obtained reference should resolve after binding")
	}
	if node != obj {
		t.Error("resolved node is not the bound declaration")
	}
	if obj.Ref() != early {
		t.Error("declaration should adopt the interned reference")
	}
}

func TestCanonicalName_BindConflict(t *testing.T) {
	root := NewRoot()
	cn := root.Child("lib").Child("C")

	if err := cn.Bind(NewClass("C")); err != nil {
		t.Fatalf("first Bind() error = %v", err)
	}
	err := cn.Bind(NewClass("C"))
	if err == nil {
		t.Fatal("second Bind() with a different node should fail")
	}
	if !strings.Contains(err.Error(), "already bound") {
		t.Errorf("Bind() error = %v, want mention of already bound", err)
	}
}

func TestCanonicalName_BindIdempotent(t *testing.T) {
	root := NewRoot()
	cn := root.Child("lib").Child("C")
	c := NewClass("C")
	if err := cn.Bind(c); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if err := cn.Bind(c); err != nil {
		t.Errorf("re-binding the same node should succeed, got %v", err)
	}
}
