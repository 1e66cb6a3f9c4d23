package codec

import "testing"

func TestUTF16RoundTripLE(t *testing.T) {
	s := "hello \U0001F600 world"
	b, _, err := EncodeUTF16(s, "strict", Little)
	if err != nil {
		t.Fatal(err)
	}
	back, _, err := DecodeUTF16Stateful(b, "strict", true, Little)
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("got %q, want %q", back, s)
	}
}

func TestUTF16BOMAutodetect(t *testing.T) {
	s := "hi"
	le, _, err := EncodeUTF16(s, "strict", Native)
	if err != nil {
		t.Fatal(err)
	}

	back, _, bo, err := DecodeUTF16Ex(le, "strict", true, Native)
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("got %q, want %q", back, s)
	}
	if bo == Native {
		t.Fatalf("expected BOM to resolve to an explicit byte order, got Native")
	}
}

func TestUTF16SurrogatePair(t *testing.T) {
	s := "\U0001F600"
	b, _, err := EncodeUTF16(s, "strict", Big)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 4 {
		t.Fatalf("expected a 4-byte surrogate pair, got %d bytes", len(b))
	}
	back, consumed, err := DecodeUTF16Stateful(b, "strict", true, Big)
	if err != nil {
		t.Fatal(err)
	}
	if back != s || consumed != 4 {
		t.Fatalf("got %q (%d), want %q (4)", back, consumed, s)
	}
}

func TestUTF16UnpairedSurrogateReplace(t *testing.T) {
	// A lone high surrogate 0xD800, big-endian.
	b := []byte{0xD8, 0x00}
	s, _, err := DecodeUTF16Stateful(b, "replace", true, Big)
	if err != nil {
		t.Fatal(err)
	}
	if s != "�" {
		t.Fatalf("got %q, want replacement character", s)
	}
}
