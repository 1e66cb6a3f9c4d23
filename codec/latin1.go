package codec

// DecodeLatin1 decodes b as Latin-1 (ISO 8859-1), grounded on
// PyUnicode_DecodeLatin1. Latin-1 maps every byte value directly to the
// codepoint of the same value, so decoding never fails and the `errors`
// argument is accepted only for interface symmetry with the other
// transcoders.
func DecodeLatin1(b []byte, errors string) (string, int, error) {
	out := make([]rune, len(b))
	for i, c := range b {
		out[i] = rune(c)
	}
	return string(out), len(b), nil
}

// EncodeLatin1 encodes s as Latin-1, grounded on latin_1_encode, which
// is unicode_encode_ucs1 with limit 0xFF.
func EncodeLatin1(s string, errors string) ([]byte, int, error) {
	return encodeUCS1(s, errors, "latin-1", 0xFF)
}
