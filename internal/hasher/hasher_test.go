package hasher

import "testing"

func TestContentHash_Deterministic(t *testing.T) {
	data := []byte("hello world")
	a := ContentHash(data, 16)
	b := ContentHash(data, 16)
	if a != b {
		t.Fatalf("hash not deterministic: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("length: got %d, want 16", len(a))
	}
}

func TestContentHash_Truncation(t *testing.T) {
	data := []byte("abc")
	if got := ContentHash(data, 8); len(got) != 8 {
		t.Errorf("got %d chars", len(got))
	}
	if got := ContentHash(data, 0); len(got) != 16 {
		t.Errorf("0 means full hash, got %d chars", len(got))
	}
	if got := ContentHash(data, 100); len(got) != 16 {
		t.Errorf("oversize cap, got %d chars", len(got))
	}
}

func TestContentHash_DiffersByContent(t *testing.T) {
	if ContentHash([]byte("a"), 16) == ContentHash([]byte("b"), 16) {
		t.Error("distinct inputs collided")
	}
}

func TestFieldsHash_BoundariesMatter(t *testing.T) {
	a := FieldsHash(12, "ab", "c")
	b := FieldsHash(12, "a", "bc")
	if a == b {
		t.Error("field boundaries must affect the hash")
	}
}

func TestFieldsHash_Deterministic(t *testing.T) {
	a := FieldsHash(12, "simple", "truecolor", "80", "24")
	b := FieldsHash(12, "simple", "truecolor", "80", "24")
	if a != b {
		t.Fatal("not deterministic")
	}
	if len(a) != 12 {
		t.Errorf("length: got %d, want 12", len(a))
	}
}
