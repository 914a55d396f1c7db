package eval

import "testing"

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := newStore()
	s.set("b", 2)
	s.set("a", 1)

	snap := s.Snapshot()
	snap["a"] = 100
	delete(snap, "b")

	if v, _ := s.Get("a"); v != 1 {
		t.Fatalf("store changed through snapshot: a=%d", v)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	names := s.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("Names() = %v", names)
	}
	if _, ok := s.Get("c"); ok {
		t.Fatalf("unexpected binding for c")
	}
}
