package storage

import (
	"testing"
)

func TestStoreGetSetDelete(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}

	if err := s.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, ok, err := s.Get("k")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if string(raw) != `"v"` {
		t.Fatalf("unexpected value %q", raw)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("key survived delete")
	}
	// deleting again is a no-op
	if err := s.Delete("k"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestReadJSONMissingAndCorrupt(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	var items []string
	if err := ReadJSON(s, "absent", &items); err != nil {
		t.Fatalf("read missing: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}

	if err := s.Set("bad", []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := ReadJSON(s, "bad", &items); err != nil {
		t.Fatalf("corrupt entry must read as empty, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty slice after corrupt read, got %v", items)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	in := map[string][]int{"a": {1, 2}, "b": {}}
	if err := WriteJSON(s, "m", in); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := map[string][]int{}
	if err := ReadJSON(s, "m", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 2 || len(out["a"]) != 2 || out["a"][0] != 1 || out["a"][1] != 2 {
		t.Fatalf("round trip mismatch: %v", out)
	}
}
