package codec

import "testing"

func TestEscapeRoundTrip(t *testing.T) {
	in := []byte("hello\n\tworld\\\x01\xff")
	enc, _, err := EscapeEncode(in, "strict")
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := EscapeDecode(enc, "strict")
	if err != nil {
		t.Fatal(err)
	}
	if string(dec) != string(in) {
		t.Fatalf("round trip = %q, want %q (via %q)", dec, in, enc)
	}
}

func TestUnicodeEscapeRoundTrip(t *testing.T) {
	s := "hello\nworld\t\U0001F600日"
	enc, _, err := UnicodeEscapeEncode(s, "strict")
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := UnicodeEscapeDecode(enc, "strict")
	if err != nil {
		t.Fatal(err)
	}
	if dec != s {
		t.Fatalf("round trip = %q, want %q (via %q)", dec, s, enc)
	}
}

func TestUnicodeEscapeNamedEscapeMiss(t *testing.T) {
	_, _, err := UnicodeEscapeDecode([]byte(`\N{LATIN SMALL LETTER A}`), "strict")
	if err == nil {
		t.Fatal("expected error: no name table registered by default")
	}
}

func TestRawUnicodeEscapeRoundTrip(t *testing.T) {
	s := "plain\\text日本語"
	enc, _, err := RawUnicodeEscapeEncode(s, "strict")
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := RawUnicodeEscapeDecode(enc, "strict")
	if err != nil {
		t.Fatal(err)
	}
	if dec != s {
		t.Fatalf("round trip = %q, want %q (via %q)", dec, s, enc)
	}
}
