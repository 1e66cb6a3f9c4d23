package codec

import "testing"

func TestASCIIRoundTrip(t *testing.T) {
	s := "Hello, World! 123"
	b, _, err := EncodeASCII(s, "strict")
	if err != nil {
		t.Fatal(err)
	}
	back, _, err := DecodeASCII(b, "strict")
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("got %q, want %q", back, s)
	}
}

func TestLatin1RoundTrip(t *testing.T) {
	s := "café"
	b, _, err := EncodeLatin1(s, "strict")
	if err != nil {
		t.Fatal(err)
	}
	back, _, err := DecodeLatin1(b, "strict")
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("got %q, want %q", back, s)
	}
}

func TestLatin1NeverFails(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}
	if _, _, err := DecodeLatin1(allBytes, "strict"); err != nil {
		t.Fatalf("latin-1 decode of any byte must never fail: %v", err)
	}
}
