package codec

import "testing"

func TestUTF7RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"Hi Mom -☺-!",
		"plain ascii text",
		"éè", // accented Latin-1 range
	}
	for _, s := range cases {
		b, _, err := EncodeUTF7(s, "strict")
		if err != nil {
			t.Fatalf("EncodeUTF7(%q): %v", s, err)
		}
		back, _, err := DecodeUTF7(b, "strict")
		if err != nil {
			t.Fatalf("DecodeUTF7(%q) on %q: %v", s, b, err)
		}
		if back != s {
			t.Errorf("round trip %q -> %q via %q", s, back, b)
		}
	}
}

func TestUTF7LiteralPlus(t *testing.T) {
	b, _, err := EncodeUTF7("a+b", "strict")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "a+-b" {
		t.Fatalf("got %q, want %q", b, "a+-b")
	}
	back, _, err := DecodeUTF7(b, "strict")
	if err != nil {
		t.Fatal(err)
	}
	if back != "a+b" {
		t.Fatalf("got %q, want %q", back, "a+b")
	}
}
