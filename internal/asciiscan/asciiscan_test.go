package asciiscan

import "testing"

func TestAllASCII(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, true},
		{"short ascii", []byte("hi"), true},
		{"short non-ascii", []byte("h\xffi"), false},
		{"exact 8 ascii", []byte("abcdefgh"), true},
		{"exact 8 with high bit", []byte("abcdefg\x80"), false},
		{"long ascii", []byte("the quick brown fox jumps over the lazy dog"), true},
		{"long with trailing non-ascii", []byte("the quick brown fox jumps over the lazy dog\xe2\x98\x83"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AllASCII(tc.data); got != tc.want {
				t.Errorf("AllASCII(%q) = %v, want %v", tc.data, got, tc.want)
			}
		})
	}
}

func TestAllASCIIWithOptimizationDisabled(t *testing.T) {
	EnableASCIIOptimization = false
	defer func() { EnableASCIIOptimization = true }()

	if !AllASCII([]byte("abcdefgh")) {
		t.Error("expected all-ascii input to report true with optimization disabled")
	}
	if AllASCII([]byte("abcdefg\x80")) {
		t.Error("expected non-ascii input to report false with optimization disabled")
	}
}

func TestFirstNonASCII(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want int
	}{
		{"empty", nil, -1},
		{"all ascii", []byte("hello"), -1},
		{"leading", []byte("\x80hello"), 0},
		{"middle", []byte("he\x80llo"), 2},
		{"trailing", []byte("hello\xff"), 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FirstNonASCII(tc.data); got != tc.want {
				t.Errorf("FirstNonASCII(%q) = %d, want %d", tc.data, got, tc.want)
			}
		})
	}
}
