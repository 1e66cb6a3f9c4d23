package codec

import "encoding/binary"

// ByteOrder selects how 16-bit code units are packed, mirroring the
// byteorder argument threaded through PyUnicode_DecodeUTF16Stateful and
// PyUnicode_EncodeUTF16: Native resolves to the host's own order (via
// stdlib encoding/binary.NativeEndian), matching sys.byteorder without
// re-deriving it by hand.
type ByteOrder int

const (
	Native ByteOrder = iota
	Little
	Big
)

func (bo ByteOrder) endian() binary.ByteOrder {
	switch bo {
	case Little:
		return binary.LittleEndian
	case Big:
		return binary.BigEndian
	default:
		return binary.NativeEndian
	}
}

const (
	bomLE = 0xFEFF
	bomBE = 0xFFFE // the BOM read with the wrong endianness
)

// DecodeUTF16Stateful decodes b as UTF-16, grounded on utf_16_decode /
// PyUnicode_DecodeUTF16Stateful. bo selects the assumed byte order; when
// bo is Native and b begins with a byte-order mark, the BOM is consumed
// and overrides bo for the rest of this call, matching the original's
// autodetection. final works like DecodeUTF8Stateful's final: a
// trailing half-consumed code unit (or unpaired leading surrogate) is
// treated as incomplete rather than invalid unless final is true.
func DecodeUTF16Stateful(b []byte, errors string, final bool, bo ByteOrder) (string, int, error) {
	s, consumed, _, err := decodeUTF16Ex(b, errors, final, bo)
	return s, consumed, err
}

// DecodeUTF16Ex is the "ex" variant (utf_16_ex_decode) that additionally
// reports which byte order was used, so stateful callers can remember it
// across chunks the way the BOM-sniffing codec object does.
func DecodeUTF16Ex(b []byte, errors string, final bool, bo ByteOrder) (string, int, ByteOrder, error) {
	return decodeUTF16Ex(b, errors, final, bo)
}

func decodeUTF16Ex(b []byte, errors string, final bool, bo ByteOrder) (string, int, ByteOrder, error) {
	handler, err := resolveHandler(errors)
	if err != nil {
		return "", 0, bo, err
	}

	i := 0
	resolved := bo
	if bo == Native && len(b) >= 2 {
		switch uint16(b[0]) | uint16(b[1])<<8 {
		case bomLE:
			resolved = Little
			i = 2
		case bomBE:
			resolved = Big
			i = 2
		default:
			resolved = Native
		}
	}
	endian := resolved.endian()

	var out []rune
	for i < len(b) {
		if i+2 > len(b) {
			if !final {
				return string(out), i, resolved, nil
			}
			decErr := &DecodeError{Encoding: "utf-16", Input: b, Start: i, End: len(b), Reason: "truncated data"}
			repl, resume, herr := callErrorHandler(handler, decErr, len(b))
			if herr != nil {
				return "", 0, resolved, herr
			}
			out = append(out, repl...)
			i = resume
			continue
		}

		unit := endian.Uint16(b[i:])

		switch {
		case unit < 0xD800 || unit > 0xDFFF:
			out = append(out, rune(unit))
			i += 2
		case unit >= 0xD800 && unit <= 0xDBFF:
			// High surrogate: needs a following low surrogate.
			if i+4 > len(b) {
				if !final {
					return string(out), i, resolved, nil
				}
				decErr := &DecodeError{Encoding: "utf-16", Input: b, Start: i, End: len(b), Reason: "unexpected end of data"}
				repl, resume, herr := callErrorHandler(handler, decErr, len(b))
				if herr != nil {
					return "", 0, resolved, herr
				}
				out = append(out, repl...)
				i = resume
				continue
			}
			lo := endian.Uint16(b[i+2:])
			if lo < 0xDC00 || lo > 0xDFFF {
				decErr := &DecodeError{Encoding: "utf-16", Input: b, Start: i, End: i + 2, Reason: "illegal UTF-16 surrogate"}
				repl, resume, herr := callErrorHandler(handler, decErr, len(b))
				if herr != nil {
					return "", 0, resolved, herr
				}
				out = append(out, repl...)
				i = resume
				continue
			}
			r := 0x10000 + (rune(unit)-0xD800)<<10 + (rune(lo) - 0xDC00)
			out = append(out, r)
			i += 4
		default: // unpaired low surrogate
			decErr := &DecodeError{Encoding: "utf-16", Input: b, Start: i, End: i + 2, Reason: "illegal UTF-16 surrogate"}
			repl, resume, herr := callErrorHandler(handler, decErr, len(b))
			if herr != nil {
				return "", 0, resolved, herr
			}
			out = append(out, repl...)
			i = resume
		}
	}

	return string(out), i, resolved, nil
}

// EncodeUTF16 encodes s as UTF-16, grounded on PyUnicode_EncodeUTF16 /
// STORECHAR. When bo is Native, a leading BOM is emitted, matching the
// original's "native" mode which always prepends one; Little and Big
// never emit a BOM, matching explicit "utf-16-le"/"utf-16-be".
func EncodeUTF16(s string, errors string, bo ByteOrder) ([]byte, int, error) {
	handler, err := resolveHandler(errors)
	if err != nil {
		return nil, 0, err
	}

	endian := bo.endian()
	var out []byte
	if bo == Native {
		out = make([]byte, 2)
		endian.PutUint16(out, bomLE)
	}

	runes := []rune(s)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r >= 0xD800 && r <= 0xDFFF:
			encErr := &EncodeError{Encoding: "utf-16", Input: s, Start: i, End: i + 1, Reason: "surrogates not allowed"}
			repl, resume, herr := callErrorHandler(handler, encErr, len(runes))
			if herr != nil {
				return nil, 0, herr
			}
			out = appendUTF16Runes(out, endian, repl)
			i = resume
		case r < 0x10000:
			buf := make([]byte, 2)
			endian.PutUint16(buf, uint16(r))
			out = append(out, buf...)
			i++
		default:
			v := uint32(r) - 0x10000
			hi := uint16(0xD800 + (v >> 10))
			lo := uint16(0xDC00 + (v & 0x3FF))
			buf := make([]byte, 4)
			endian.PutUint16(buf, hi)
			endian.PutUint16(buf[2:], lo)
			out = append(out, buf...)
			i++
		}
	}

	return out, len(runes), nil
}

func appendUTF16Runes(out []byte, endian binary.ByteOrder, runes []rune) []byte {
	for _, r := range runes {
		if r < 0x10000 {
			buf := make([]byte, 2)
			endian.PutUint16(buf, uint16(r))
			out = append(out, buf...)
			continue
		}
		v := uint32(r) - 0x10000
		hi := uint16(0xD800 + (v >> 10))
		lo := uint16(0xDC00 + (v & 0x3FF))
		buf := make([]byte, 4)
		endian.PutUint16(buf, hi)
		endian.PutUint16(buf[2:], lo)
		out = append(out, buf...)
	}
	return out
}
