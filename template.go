package pycore

import "strings"

// expandTemplate walks template left to right, copying literal text
// and replacing each backslash group reference by calling resolve with
// the reference text (a bare number for \1-\99, or the inner name/number
// for \g<...>). An unresolvable reference (resolve returns false) is
// left in the output verbatim, the same tolerant behavior _sre.py's
// expand_template gives an out-of-range or unknown group.
//
// Supported forms: \1 .. \99, \g<1>, \g<name>. \\ is a literal
// backslash and \n/\t/... are not specially interpreted here — Expand
// operates on an already-substituted Go string, so Go string literals
// carry their own escapes; only the regex-specific \g<...> and bare
// digit-group forms are template syntax.
func expandTemplate(template string, resolve func(ref string) (string, bool)) string {
	var b strings.Builder
	i := 0
	n := len(template)
	for i < n {
		c := template[i]
		if c != '\\' || i+1 >= n {
			b.WriteByte(c)
			i++
			continue
		}
		next := template[i+1]
		switch {
		case next == '\\':
			b.WriteByte('\\')
			i += 2
		case next == 'g' && i+2 < n && template[i+2] == '<':
			end := strings.IndexByte(template[i+3:], '>')
			if end < 0 {
				b.WriteByte(c)
				i++
				continue
			}
			ref := template[i+3 : i+3+end]
			if text, ok := resolve(ref); ok {
				b.WriteString(text)
			} else {
				b.WriteString(template[i : i+3+end+1])
			}
			i = i + 3 + end + 1
		case next >= '0' && next <= '9':
			j := i + 1
			for j < n && j < i+3 && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			ref := template[i+1 : j]
			if text, ok := resolve(ref); ok {
				b.WriteString(text)
			} else {
				b.WriteString(template[i:j])
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
