package codec

import "fmt"

// Charmap maps between byte values and runes for the charmap codec,
// grounded on the mapping object PyUnicode_EncodeCharmap /
// PyUnicode_DecodeCharmap index into. A nil Charmap means "use Latin-1",
// matching the original's "mapping is None" short-circuit.
type Charmap interface {
	// Encode returns the byte(s) r maps to, or ok == false if r is
	// unmapped.
	Encode(r rune) (b []byte, ok bool)
	// Decode returns the rune(s) byte value v maps to, or ok == false
	// if v is unmapped. A mapping to an empty string (as opposed to
	// "unmapped") is represented by a non-nil, zero-length result.
	Decode(v byte) (rs []rune, ok bool)
}

// RuneMap is the common Charmap implementation: a sparse byte<->rune
// table built by BuildCharmap or assembled by hand.
type RuneMap struct {
	encode map[rune][]byte
	decode [256][]rune
	has    [256]bool
}

func (m *RuneMap) Encode(r rune) ([]byte, bool) {
	b, ok := m.encode[r]
	return b, ok
}

func (m *RuneMap) Decode(v byte) ([]rune, bool) {
	if !m.has[v] {
		return nil, false
	}
	return m.decode[v], true
}

// BuildCharmap constructs a RuneMap from a 256-or-fewer-rune decoding
// string, where decodeTable[i] is the rune byte value i decodes to,
// grounded on charmap_build. Bytes beyond len(decodeTable) are left
// unmapped.
func BuildCharmap(decodeTable []rune) *RuneMap {
	m := &RuneMap{encode: map[rune][]byte{}}
	for i, r := range decodeTable {
		if i > 0xFF {
			break
		}
		m.decode[i] = []rune{r}
		m.has[i] = true
		m.encode[r] = []byte{byte(i)}
	}
	return m
}

// DecodeCharmap decodes b using m, falling back to Latin-1 when m is
// nil, grounded on charmap_decode / PyUnicode_DecodeCharmap.
func DecodeCharmap(b []byte, errors string, m Charmap) (string, int, error) {
	if m == nil {
		return DecodeLatin1(b, errors)
	}

	handler, err := resolveHandler(errors)
	if err != nil {
		return "", 0, err
	}

	var out []rune
	i := 0
	for i < len(b) {
		rs, ok := m.Decode(b[i])
		if !ok {
			decErr := &DecodeError{Encoding: "charmap", Input: b, Start: i, End: i + 1, Reason: "character maps to <undefined>"}
			repl, resume, herr := callErrorHandler(handler, decErr, len(b))
			if herr != nil {
				return "", 0, herr
			}
			out = append(out, repl...)
			i = resume
			continue
		}
		out = append(out, rs...)
		i++
	}

	return string(out), len(b), nil
}

// EncodeCharmap encodes s using m, falling back to Latin-1 when m is
// nil, grounded on charmap_encode / charmapencode_output /
// PyUnicode_EncodeCharmap.
func EncodeCharmap(s string, errors string, m Charmap) ([]byte, int, error) {
	if m == nil {
		return EncodeLatin1(s, errors)
	}

	handler, err := resolveHandler(errors)
	if err != nil {
		return nil, 0, err
	}

	runes := []rune(s)
	var out []byte
	i := 0
	for i < len(runes) {
		b, ok := m.Encode(runes[i])
		if !ok {
			encErr := &EncodeError{Encoding: "charmap", Input: s, Start: i, End: i + 1, Reason: "character maps to <undefined>"}
			repl, resume, herr := callErrorHandler(handler, encErr, len(runes))
			if herr != nil {
				return nil, 0, herr
			}
			for _, r := range repl {
				rb, rok := m.Encode(r)
				if !rok {
					return nil, 0, fmt.Errorf("charmap codec: replacement character %U also unmapped", r)
				}
				out = append(out, rb...)
			}
			i = resume
			continue
		}
		out = append(out, b...)
		i++
	}

	return out, len(runes), nil
}
