package codec

import (
	"fmt"

	"github.com/coregx/pycore/internal/asciiscan"
)

// DecodeASCII decodes b as 7-bit ASCII, grounded on ascii_decode /
// PyUnicode_DecodeASCII. Any byte >= 0x80 is passed to the named error
// handler.
func DecodeASCII(b []byte, errors string) (string, int, error) {
	handler, err := resolveHandler(errors)
	if err != nil {
		return "", 0, err
	}

	if asciiscan.AllASCII(b) {
		return string(b), len(b), nil
	}

	var out []rune
	i := 0
	for i < len(b) {
		if run := asciiscan.FirstNonASCII(b[i:]); run != 0 {
			if run < 0 {
				run = len(b) - i
			}
			for _, c := range b[i : i+run] {
				out = append(out, rune(c))
			}
			i += run
			continue
		}

		decErr := &DecodeError{Encoding: "ascii", Input: b, Start: i, End: i + 1, Reason: "ordinal not in range(128)"}
		repl, resume, herr := callErrorHandler(handler, decErr, len(b))
		if herr != nil {
			return "", 0, herr
		}
		out = append(out, repl...)
		i = resume
	}

	return string(out), len(b), nil
}

// EncodeASCII encodes s as 7-bit ASCII, grounded on ascii_encode /
// PyUnicode_EncodeASCII. Any rune >= 0x80 is passed to the named error
// handler.
func EncodeASCII(s string, errors string) ([]byte, int, error) {
	return encodeUCS1(s, errors, "ascii", 0x7F)
}

// encodeUCS1 is the shared single-byte encode loop used by both ascii
// and latin-1, grounded on unicode_encode_ucs1: runs of characters that
// fit in [0, limit] are copied verbatim; everything else is batched and
// handed to the error handler together, like the original's
// collstart/collend windowing.
func encodeUCS1(s string, errors string, encoding string, limit rune) ([]byte, int, error) {
	handler, err := resolveHandler(errors)
	if err != nil {
		return nil, 0, err
	}

	runes := []rune(s)
	out := make([]byte, 0, len(runes))

	i := 0
	for i < len(runes) {
		if runes[i] <= limit {
			out = append(out, byte(runes[i]))
			i++
			continue
		}

		start := i
		for i < len(runes) && runes[i] > limit {
			i++
		}

		encErr := &EncodeError{Encoding: encoding, Input: s, Start: start, End: i, Reason: "ordinal not in range"}
		repl, resume, herr := callErrorHandler(handler, encErr, len(runes))
		if herr != nil {
			return nil, 0, herr
		}
		for _, r := range repl {
			if r > 0xFF {
				return nil, 0, fmt.Errorf("%s codec: replacement character %U out of byte range", encoding, r)
			}
			out = append(out, byte(r))
		}
		i = resume
	}

	return out, len(runes), nil
}

// resolveHandler maps an empty errors name to "strict" and looks up
// the rest, matching the original's default-argument convention.
func resolveHandler(errors string) (ErrorHandler, error) {
	if errors == "" {
		errors = "strict"
	}
	return LookupError(errors)
}
