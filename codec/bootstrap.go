package codec

// builtinSearch is the codec search function registered by
// registerBuiltinCodecs; it resolves every encoding name this package
// implements directly, the Go equivalent of the "encodings" package's
// search function that codec_need_encodings bootstraps on first use.
func builtinSearch(name string) (Entry, bool) {
	switch name {
	case "ascii", "646", "us_ascii":
		return Entry{
			Encoder: EncodeASCII,
			Decoder: func(b []byte, errors string) (string, int, error) { return DecodeASCII(b, errors) },
		}, true

	case "latin_1", "latin1", "iso_8859_1", "8859", "l1":
		return Entry{
			Encoder: EncodeLatin1,
			Decoder: func(b []byte, errors string) (string, int, error) { return DecodeLatin1(b, errors) },
		}, true

	case "utf_8", "utf8", "u8", "utf":
		return Entry{
			Encoder: EncodeUTF8,
			Decoder: func(b []byte, errors string) (string, int, error) {
				return DecodeUTF8Stateful(b, errors, true)
			},
		}, true

	case "utf_16":
		return Entry{
			Encoder: func(s, errors string) ([]byte, int, error) { return EncodeUTF16(s, errors, Native) },
			Decoder: func(b []byte, errors string) (string, int, error) {
				return DecodeUTF16Stateful(b, errors, true, Native)
			},
		}, true

	case "utf_16_le", "utf16le":
		return Entry{
			Encoder: func(s, errors string) ([]byte, int, error) { return EncodeUTF16(s, errors, Little) },
			Decoder: func(b []byte, errors string) (string, int, error) {
				return DecodeUTF16Stateful(b, errors, true, Little)
			},
		}, true

	case "utf_16_be", "utf16be":
		return Entry{
			Encoder: func(s, errors string) ([]byte, int, error) { return EncodeUTF16(s, errors, Big) },
			Decoder: func(b []byte, errors string) (string, int, error) {
				return DecodeUTF16Stateful(b, errors, true, Big)
			},
		}, true

	case "utf_7", "utf7", "u7":
		return Entry{
			Encoder: EncodeUTF7,
			Decoder: func(b []byte, errors string) (string, int, error) { return DecodeUTF7(b, errors) },
		}, true

	case "unicode_escape":
		return Entry{
			Encoder: UnicodeEscapeEncode,
			Decoder: func(b []byte, errors string) (string, int, error) { return UnicodeEscapeDecode(b, errors) },
		}, true

	case "raw_unicode_escape":
		return Entry{
			Encoder: RawUnicodeEscapeEncode,
			Decoder: func(b []byte, errors string) (string, int, error) { return RawUnicodeEscapeDecode(b, errors) },
		}, true

	case "string_escape", "escape":
		return Entry{
			Encoder: func(s, errors string) ([]byte, int, error) { return EscapeEncode([]byte(s), errors) },
			Decoder: func(b []byte, errors string) (string, int, error) {
				out, n, err := EscapeDecode(b, errors)
				return string(out), n, err
			},
		}, true

	case "charmap":
		// The bare "charmap" name has no table of its own; it falls
		// back to Latin-1, matching codecs.charmap_*(data, errors, None).
		return Entry{
			Encoder: func(s, errors string) ([]byte, int, error) { return EncodeCharmap(s, errors, nil) },
			Decoder: func(b []byte, errors string) (string, int, error) { return DecodeCharmap(b, errors, nil) },
		}, true
	}

	return Entry{}, false
}
