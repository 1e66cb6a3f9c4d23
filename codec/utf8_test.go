package codec

import "testing"

func TestUTF8RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"héllo wörld",
		"日本語",
		"\U0001F600", // astral plane
	}
	for _, s := range cases {
		b, _, err := EncodeUTF8(s, "strict")
		if err != nil {
			t.Fatalf("EncodeUTF8(%q): %v", s, err)
		}
		back, _, err := DecodeUTF8Stateful(b, "strict", true)
		if err != nil {
			t.Fatalf("DecodeUTF8Stateful(%q): %v", s, err)
		}
		if back != s {
			t.Errorf("round trip %q -> %q", s, back)
		}
	}
}

func TestUTF8StatefulAssociativity(t *testing.T) {
	s := "hello \U0001F600 world"
	b, _, err := EncodeUTF8(s, "strict")
	if err != nil {
		t.Fatal(err)
	}

	// Split the 4-byte emoji sequence in half and feed it across two
	// non-final calls; the result should equal decoding it whole.
	splitAt := 8
	part1, consumed1, err := DecodeUTF8Stateful(b[:splitAt], "strict", false)
	if err != nil {
		t.Fatalf("part1: %v", err)
	}
	leftover := b[consumed1:splitAt]
	part2, _, err := DecodeUTF8Stateful(append(leftover, b[splitAt:]...), "strict", true)
	if err != nil {
		t.Fatalf("part2: %v", err)
	}

	if part1+part2 != s {
		t.Fatalf("chunked decode = %q+%q, want %q", part1, part2, s)
	}
}

func TestUTF8InvalidStartByte(t *testing.T) {
	_, _, err := DecodeUTF8Stateful([]byte{0xFF}, "strict", true)
	if err == nil {
		t.Fatal("expected error for invalid start byte")
	}
}

func TestUTF8ReplaceHandler(t *testing.T) {
	s, _, err := DecodeUTF8Stateful([]byte{'a', 0xFF, 'b'}, "replace", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "a�b" {
		t.Fatalf("got %q, want %q", s, "a�b")
	}
}

func TestUTF8IgnoreHandlerIdempotent(t *testing.T) {
	in := []byte{0xFF, 0xFF, 'a'}
	s1, _, err := DecodeUTF8Stateful(in, "ignore", true)
	if err != nil {
		t.Fatal(err)
	}
	s2, _, err := DecodeUTF8Stateful(in, "ignore", true)
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s2 || s1 != "a" {
		t.Fatalf("ignore handler not idempotent: %q vs %q", s1, s2)
	}
}
