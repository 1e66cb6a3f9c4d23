package codec

import "fmt"

// registerErrorHandlers installs the five built-in error handlers under
// their CPython names, grounded on strict_errors/ignore_errors/
// replace_errors/xmlcharrefreplace_errors/backslashreplace_errors.
func registerErrorHandlers() {
	errorHandlers["strict"] = strictErrors
	errorHandlers["ignore"] = ignoreErrors
	errorHandlers["replace"] = replaceErrors
	errorHandlers["xmlcharrefreplace"] = xmlCharrefReplaceErrors
	errorHandlers["backslashreplace"] = backslashReplaceErrors
}

// strictErrors always re-raises: it is the default handler and the one
// every other handler is compared against.
func strictErrors(err error) ([]rune, int, error) {
	return nil, 0, err
}

// ignoreErrors drops the offending range and resumes right after it.
func ignoreErrors(err error) ([]rune, int, error) {
	switch e := err.(type) {
	case *DecodeError:
		return nil, e.End, nil
	case *EncodeError:
		return nil, e.End, nil
	case *TranslateError:
		return nil, e.End, nil
	default:
		return nil, 0, fmt.Errorf("ignore: %w", err)
	}
}

// replaceErrors substitutes one placeholder per offending unit:
// U+FFFD for decode errors, '?' for encode/translate errors.
func replaceErrors(err error) ([]rune, int, error) {
	switch e := err.(type) {
	case *DecodeError:
		n := e.End - e.Start
		repl := make([]rune, n)
		for i := range repl {
			repl[i] = '�'
		}
		return repl, e.End, nil
	case *EncodeError:
		n := e.End - e.Start
		repl := make([]rune, n)
		for i := range repl {
			repl[i] = '?'
		}
		return repl, e.End, nil
	case *TranslateError:
		n := e.End - e.Start
		repl := make([]rune, n)
		for i := range repl {
			repl[i] = '�'
		}
		return repl, e.End, nil
	default:
		return nil, 0, fmt.Errorf("replace: %w", err)
	}
}

// xmlCharrefReplaceErrors renders each offending character as an XML
// numeric character reference, e.g. U+20AC becomes "&#8364;". Only
// meaningful for encode/translate errors; a decode error has no source
// character to render, so it falls back to strict.
func xmlCharrefReplaceErrors(err error) ([]rune, int, error) {
	switch e := err.(type) {
	case *EncodeError:
		var repl []rune
		for _, r := range []rune(e.Input)[e.Start:e.End] {
			repl = append(repl, []rune(fmt.Sprintf("&#%d;", r))...)
		}
		return repl, e.End, nil
	case *TranslateError:
		var repl []rune
		for _, r := range e.Input[e.Start:e.End] {
			repl = append(repl, []rune(fmt.Sprintf("&#%d;", r))...)
		}
		return repl, e.End, nil
	default:
		return strictErrors(err)
	}
}

// backslashReplaceErrors renders each offending byte or character as a
// backslash escape: \xHH, \uHHHH, or \UHHHHHHHH depending on width for
// encode/translate errors, and \xHH per byte for decode errors.
func backslashReplaceErrors(err error) ([]rune, int, error) {
	switch e := err.(type) {
	case *DecodeError:
		var repl []rune
		for _, b := range e.Input[e.Start:e.End] {
			repl = append(repl, []rune(fmt.Sprintf("\\x%02x", b))...)
		}
		return repl, e.End, nil
	case *EncodeError:
		var repl []rune
		for _, r := range []rune(e.Input)[e.Start:e.End] {
			repl = append(repl, []rune(escapeRune(r))...)
		}
		return repl, e.End, nil
	case *TranslateError:
		var repl []rune
		for _, r := range e.Input[e.Start:e.End] {
			repl = append(repl, []rune(escapeRune(r))...)
		}
		return repl, e.End, nil
	default:
		return nil, 0, fmt.Errorf("backslashreplace: %w", err)
	}
}

// escapeRune renders r as \xHH, \uHHHH, or \UHHHHHHHH depending on its
// magnitude, the width rule shared by backslashreplace and the
// unicode-escape codec.
func escapeRune(r rune) string {
	switch {
	case r <= 0xFF:
		return fmt.Sprintf("\\x%02x", r)
	case r <= 0xFFFF:
		return fmt.Sprintf("\\u%04x", r)
	default:
		return fmt.Sprintf("\\U%08x", r)
	}
}
