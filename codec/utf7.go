package codec

// utf7B64Alphabet is the modified base64 alphabet UTF-7 shifts into,
// grounded on the B64 string used by PyUnicode_DecodeUTF7 /
// PyUnicode_EncodeUTF7.
const utf7B64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var utf7B64Rev [256]int8

func init() {
	for i := range utf7B64Rev {
		utf7B64Rev[i] = -1
	}
	for i, c := range utf7B64Alphabet {
		utf7B64Rev[byte(c)] = int8(i)
	}
}

// utf7Direct reports whether b may appear unescaped outside a shift
// sequence, the "direct characters" set from RFC 2152 as used by
// PyUnicode_EncodeUTF7 (the utf7_special table's inverse).
func utf7Direct(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '\'', '(', ')', ',', '-', '.', '/', ':', '?',
		' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// DecodeUTF7 decodes b as UTF-7, grounded on utf_7_decode /
// PyUnicode_DecodeUTF7's inShift/bitsleft/charsleft state machine.
func DecodeUTF7(b []byte, errors string) (string, int, error) {
	handler, err := resolveHandler(errors)
	if err != nil {
		return "", 0, err
	}

	var out []rune
	inShift := false
	var bits uint32
	var bitCount int
	shiftStart := 0

	i := 0
	for i < len(b) {
		c := b[i]

		if !inShift {
			if c == '+' {
				inShift = true
				bits = 0
				bitCount = 0
				shiftStart = i
				i++
				continue
			}
			if c >= 0x80 {
				decErr := &DecodeError{Encoding: "utf-7", Input: b, Start: i, End: i + 1, Reason: "unexpected special character"}
				repl, resume, herr := callErrorHandler(handler, decErr, len(b))
				if herr != nil {
					return "", 0, herr
				}
				out = append(out, repl...)
				i = resume
				continue
			}
			out = append(out, rune(c))
			i++
			continue
		}

		// In a shift sequence.
		v := utf7B64Rev[c]
		if v < 0 {
			// Shift ends. "+-" is the escape for a literal '+'; any
			// other terminator is consumed only if it is '-', else it
			// is reprocessed as a direct character.
			if i == shiftStart+1 && c == '-' {
				out = append(out, '+')
				i++
				inShift = false
				continue
			}
			inShift = false
			if bitCount >= 6 || (bitCount > 0 && bits&((1<<uint(bitCount))-1) != 0) {
				decErr := &DecodeError{Encoding: "utf-7", Input: b, Start: shiftStart, End: i, Reason: "non-zero padding bits in shift sequence"}
				repl, resume, herr := callErrorHandler(handler, decErr, len(b))
				if herr != nil {
					return "", 0, herr
				}
				out = append(out, repl...)
			}
			if c == '-' {
				i++
			}
			continue
		}

		bits = bits<<6 | uint32(v)
		bitCount += 6
		if bitCount >= 16 {
			bitCount -= 16
			unit := uint16(bits >> uint(bitCount))
			out = append(out, rune(unit))
		}
		i++
	}

	if inShift {
		// An unterminated shift at end of (final) input is accepted
		// with any leftover bits required to be zero, same as above.
		if bitCount > 0 && bits&((1<<uint(bitCount))-1) != 0 {
			decErr := &DecodeError{Encoding: "utf-7", Input: b, Start: shiftStart, End: len(b), Reason: "non-zero padding bits in shift sequence"}
			_, _, herr := callErrorHandler(handler, decErr, len(b))
			if herr != nil {
				return "", 0, herr
			}
		}
	}

	return string(out), len(b), nil
}

// EncodeUTF7 encodes s as UTF-7, grounded on PyUnicode_EncodeUTF7.
// Only the characters utf7Direct accepts are emitted literally; the
// "optional direct" punctuation outside that set is always base64
// encoded, and there is no option to emit it literally.
func EncodeUTF7(s string, errors string) ([]byte, int, error) {
	var out []byte
	inShift := false
	var bits uint32
	var bitCount int

	flush := func() {
		if bitCount > 0 {
			out = append(out, utf7B64Alphabet[(bits<<uint(6-bitCount))&0x3F])
			bitCount = 0
			bits = 0
		}
	}

	runes := []rune(s)
	for _, r := range runes {
		if r < 0x80 && utf7Direct(byte(r)) {
			if inShift {
				flush()
				out = append(out, '-')
				inShift = false
			}
			out = append(out, byte(r))
			continue
		}
		if r == '+' && !inShift {
			out = append(out, '+', '-')
			continue
		}

		if !inShift {
			out = append(out, '+')
			inShift = true
			bits = 0
			bitCount = 0
		}

		bits = bits<<16 | uint32(uint16(r))
		bitCount += 16
		for bitCount >= 6 {
			bitCount -= 6
			out = append(out, utf7B64Alphabet[(bits>>uint(bitCount))&0x3F])
		}
	}

	if inShift {
		flush()
		out = append(out, '-')
	}

	return out, len(runes), nil
}
