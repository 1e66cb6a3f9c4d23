package codec

import "testing"

func TestCharmapNilFallsBackToLatin1(t *testing.T) {
	s, _, err := DecodeCharmap([]byte{0xE9}, "strict", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s != "é" {
		t.Fatalf("got %q, want %q", s, "é")
	}
}

func TestCharmapRoundTrip(t *testing.T) {
	table := make([]rune, 256)
	for i := range table {
		table[i] = rune(i)
	}
	// Remap to a rune outside [0,256) so it can't collide with any
	// other index's identity mapping in the encode direction.
	table['A'] = '☃'
	m := BuildCharmap(table)

	s, _, err := DecodeCharmap([]byte("ABC"), "strict", m)
	if err != nil {
		t.Fatal(err)
	}
	if s != "☃BC" {
		t.Fatalf("got %q, want %q", s, "☃BC")
	}

	b, _, err := EncodeCharmap("☃BC", "strict", m)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "ABC" {
		t.Fatalf("got %q, want %q", b, "ABC")
	}
}
