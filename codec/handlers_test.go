package codec

import "testing"

func TestStrictReRaises(t *testing.T) {
	_, _, err := DecodeASCII([]byte{0x80}, "strict")
	if err == nil {
		t.Fatal("expected strict handler to propagate the error")
	}
}

func TestIgnoreDropsOffendingRange(t *testing.T) {
	s, _, err := DecodeASCII([]byte{'a', 0x80, 'b'}, "ignore")
	if err != nil {
		t.Fatal(err)
	}
	if s != "ab" {
		t.Fatalf("got %q, want %q", s, "ab")
	}
}

func TestBackslashReplaceEncode(t *testing.T) {
	b, _, err := EncodeASCII("aéb", "backslashreplace")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `a\xe9b` {
		t.Fatalf("got %q, want %q", b, `a\xe9b`)
	}
}

func TestXMLCharrefReplaceEncode(t *testing.T) {
	b, _, err := EncodeASCII("a€b", "xmlcharrefreplace")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "a&#8364;b" {
		t.Fatalf("got %q, want %q", b, "a&#8364;b")
	}
}

func TestReplaceErrorsIdempotent(t *testing.T) {
	in := []byte{0x80, 0x81}
	s1, _, err := DecodeASCII(in, "replace")
	if err != nil {
		t.Fatal(err)
	}
	s2, _, err := DecodeASCII(in, "replace")
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s2 {
		t.Fatalf("replace handler not idempotent: %q vs %q", s1, s2)
	}
}
