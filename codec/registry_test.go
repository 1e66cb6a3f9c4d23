package codec

import (
	"errors"
	"testing"
)

func TestLookupUnknownEncoding(t *testing.T) {
	_, err := Lookup("definitely-not-a-real-encoding")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("Lookup(unknown) error = %v, want ErrUnknownEncoding", err)
	}
}

func TestLookupMemoization(t *testing.T) {
	calls := 0
	Register(func(name string) (Entry, bool) {
		if name == "memo_probe" {
			calls++
			return Entry{
				Encoder: func(s, errors string) ([]byte, int, error) { return []byte(s), len(s), nil },
				Decoder: func(b []byte, errors string) (string, int, error) { return string(b), len(b), nil },
			}, true
		}
		return Entry{}, false
	})

	if _, err := Lookup("memo_probe"); err != nil {
		t.Fatalf("first Lookup: %v", err)
	}
	if _, err := Lookup("memo_probe"); err != nil {
		t.Fatalf("second Lookup: %v", err)
	}
	if calls != 1 {
		t.Fatalf("search function invoked %d times, want 1 (cache miss once, then memoized)", calls)
	}
}

func TestLookupErrorUnknownHandler(t *testing.T) {
	_, err := LookupError("not-a-handler")
	if !errors.Is(err, ErrUnknownErrorHandler) {
		t.Fatalf("LookupError(unknown) error = %v, want ErrUnknownErrorHandler", err)
	}
}

func TestEncodeDecodeDispatch(t *testing.T) {
	out, err := Encode("hello", "ascii", "strict")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Decode(out, "ascii", "strict")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != "hello" {
		t.Fatalf("round trip = %q, want %q", back, "hello")
	}
}
