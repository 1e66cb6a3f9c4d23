package codec

// RawUnicodeEscapeEncode renders s with only \uHHHH/\UHHHHHHHH escapes
// for non-Latin-1 characters; every Latin-1 byte, including a literal
// backslash, passes through unescaped, grounded on
// PyUnicode_EncodeRawUnicodeEscape.
func RawUnicodeEscapeEncode(s string, errors string) ([]byte, int, error) {
	var out []byte
	runes := []rune(s)
	for _, r := range runes {
		if r <= 0xFF {
			out = append(out, byte(r))
			continue
		}
		out = append(out, []byte(escapeRune(r))...)
	}
	return out, len(runes), nil
}

// RawUnicodeEscapeDecode parses \uHHHH/\UHHHHHHHH escapes and passes
// everything else through verbatim (notably: an unescaped backslash is
// not itself an escape character here), grounded on
// raw_unicode_escape_decode / PyUnicode_DecodeRawUnicodeEscape.
//
// The original only recognizes a \u or \U escape when it is preceded by
// an odd number of backslashes, so that "\\u0041" (an escaped literal
// backslash followed by the letter u) is not mistaken for an escape;
// the backslash-run counting in the loop below reproduces that
// odd/even gate.
func RawUnicodeEscapeDecode(b []byte, errors string) (string, int, error) {
	handler, err := resolveHandler(errors)
	if err != nil {
		return "", 0, err
	}

	var out []rune
	i := 0
	for i < len(b) {
		if b[i] != '\\' {
			out = append(out, rune(b[i]))
			i++
			continue
		}

		runStart := i
		backslashes := 0
		for i < len(b) && b[i] == '\\' {
			backslashes++
			i++
		}

		// All but a possible trailing escape-introducing backslash are
		// literal backslashes.
		literal := backslashes
		if backslashes%2 == 1 && i < len(b) && (b[i] == 'u' || b[i] == 'U') {
			literal--
		}
		for k := 0; k < literal; k++ {
			out = append(out, '\\')
		}

		if backslashes%2 == 0 || i >= len(b) || (b[i] != 'u' && b[i] != 'U') {
			continue
		}

		width := 4
		if b[i] == 'U' {
			width = 8
		}
		i++
		r, n, ok := hexescape(b, i, width)
		if !ok {
			decErr := &DecodeError{Encoding: "raw-unicode-escape", Input: b, Start: runStart, End: min(i+n, len(b)), Reason: "truncated escape"}
			repl, resume, herr := callErrorHandler(handler, decErr, len(b))
			if herr != nil {
				return "", 0, herr
			}
			out = append(out, repl...)
			i = resume
			continue
		}
		if width == 8 && r > 0x10FFFF {
			decErr := &DecodeError{Encoding: "raw-unicode-escape", Input: b, Start: runStart, End: i + n, Reason: "character out of range"}
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

	return string(out), len(b), nil
}
