package codec

import (
	"github.com/coregx/pycore/internal/asciiscan"
)

// utf8SeqLen is the classic UTF-8 leading-byte-to-sequence-length
// table, grounded on the utf8_code_length table in
// PyUnicode_DecodeUTF8Stateful. 0 marks a byte that can never start a
// sequence (a continuation byte or an invalid leading byte).
var utf8SeqLen = [256]byte{}

func init() {
	for b := 0; b < 0x80; b++ {
		utf8SeqLen[b] = 1
	}
	for b := 0x80; b < 0xC2; b++ {
		utf8SeqLen[b] = 0 // continuation byte, or C0/C1 (always overlong)
	}
	for b := 0xC2; b < 0xE0; b++ {
		utf8SeqLen[b] = 2
	}
	for b := 0xE0; b < 0xF0; b++ {
		utf8SeqLen[b] = 3
	}
	for b := 0xF0; b < 0xF5; b++ {
		utf8SeqLen[b] = 4
	}
	// 0xF5-0xFF can never appear in valid UTF-8 (would encode > U+10FFFF).
}

// DecodeUTF8Stateful decodes b as UTF-8, grounded on utf_8_decode /
// PyUnicode_DecodeUTF8Stateful. When final is false, a sequence that is
// truncated at the end of b is treated as incomplete rather than
// invalid: decoding stops there and the byte count consumed so far is
// returned, letting the caller prepend the leftover bytes to the next
// chunk. When final is true, a truncated trailing sequence is an error.
func DecodeUTF8Stateful(b []byte, errors string, final bool) (string, int, error) {
	handler, err := resolveHandler(errors)
	if err != nil {
		return "", 0, err
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

		lead := b[i]
		n := int(utf8SeqLen[lead])
		if n == 0 {
			decErr := &DecodeError{Encoding: "utf-8", Input: b, Start: i, End: i + 1, Reason: "invalid start byte"}
			repl, resume, herr := callErrorHandler(handler, decErr, len(b))
			if herr != nil {
				return "", 0, herr
			}
			out = append(out, repl...)
			i = resume
			continue
		}

		if i+n > len(b) {
			if !final {
				// Incomplete sequence at the end of a non-final chunk:
				// stop here, let the caller resume with more bytes.
				return string(out), i, nil
			}
			decErr := &DecodeError{Encoding: "utf-8", Input: b, Start: i, End: len(b), Reason: "unexpected end of data"}
			repl, resume, herr := callErrorHandler(handler, decErr, len(b))
			if herr != nil {
				return "", 0, herr
			}
			out = append(out, repl...)
			i = resume
			continue
		}

		r, ok := decodeUTF8Seq(b[i : i+n])
		if !ok {
			decErr := &DecodeError{Encoding: "utf-8", Input: b, Start: i, End: i + 1, Reason: "invalid continuation byte"}
			repl, resume, herr := callErrorHandler(handler, decErr, len(b))
			if herr != nil {
				return "", 0, herr
			}
			out = append(out, repl...)
			i = resume
			continue
		}

		out = append(out, r)
		i += n
	}

	return string(out), i, nil
}

// decodeUTF8Seq validates and decodes a single non-ASCII UTF-8
// sequence whose length was already determined from its leading byte.
// It rejects malformed continuation bytes, overlong encodings, and
// encoded surrogate halves, mirroring the inline checks in
// PyUnicode_DecodeUTF8Stateful.
func decodeUTF8Seq(seq []byte) (rune, bool) {
	for _, c := range seq[1:] {
		if c&0xC0 != 0x80 {
			return 0, false
		}
	}

	var r rune
	switch len(seq) {
	case 2:
		r = rune(seq[0]&0x1F)<<6 | rune(seq[1]&0x3F)
	case 3:
		r = rune(seq[0]&0x0F)<<12 | rune(seq[1]&0x3F)<<6 | rune(seq[2]&0x3F)
		if r < 0x800 || (r >= 0xD800 && r <= 0xDFFF) {
			return 0, false
		}
	case 4:
		r = rune(seq[0]&0x07)<<18 | rune(seq[1]&0x3F)<<12 | rune(seq[2]&0x3F)<<6 | rune(seq[3]&0x3F)
		if r < 0x10000 || r > 0x10FFFF {
			return 0, false
		}
	}
	return r, true
}

// EncodeUTF8 encodes s as UTF-8, grounded on PyUnicode_EncodeUTF8 /
// encodeUCS4. A lone surrogate half (only reachable in Go via an
// explicitly constructed rune) is rejected through the error handler
// rather than silently re-encoded, matching CPython's strict surrogate
// rejection.
func EncodeUTF8(s string, errors string) ([]byte, int, error) {
	handler, err := resolveHandler(errors)
	if err != nil {
		return nil, 0, err
	}

	runes := []rune(s)
	out := make([]byte, 0, len(runes))

	i := 0
	for i < len(runes) {
		r := runes[i]
		if r >= 0xD800 && r <= 0xDFFF {
			encErr := &EncodeError{Encoding: "utf-8", Input: s, Start: i, End: i + 1, Reason: "surrogates not allowed"}
			repl, resume, herr := callErrorHandler(handler, encErr, len(runes))
			if herr != nil {
				return nil, 0, herr
			}
			out = appendUTF8Runes(out, repl)
			i = resume
			continue
		}
		out = appendUTF8Runes(out, []rune{r})
		i++
	}

	return out, len(runes), nil
}

func appendUTF8Runes(out []byte, runes []rune) []byte {
	for _, r := range runes {
		switch {
		case r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out, byte(0xC0|r>>6), byte(0x80|r&0x3F))
		case r < 0x10000:
			out = append(out, byte(0xE0|r>>12), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
		default:
			out = append(out, byte(0xF0|r>>18), byte(0x80|(r>>12)&0x3F), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
		}
	}
	return out
}
