package codec

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is the Go shape of a codec's 4-tuple: an encoder, a decoder,
// and opaque stream reader/writer constructors. StreamReader and
// StreamWriter are carried for parity with the original registry
// contract but are never invoked by this package (incremental stream
// codecs are out of scope).
type Entry struct {
	Encoder      func(s string, errors string) (out []byte, consumed int, err error)
	Decoder      func(b []byte, errors string) (out string, consumed int, err error)
	StreamReader any
	StreamWriter any
}

// SearchFunc looks up a codec Entry by normalized encoding name. It
// returns ok == false if it does not recognize the name, letting
// Lookup fall through to the next registered function.
type SearchFunc func(name string) (Entry, bool)

var (
	registryMu   sync.RWMutex
	searchPath   []SearchFunc
	searchCache  = map[string]Entry{}
	bootstrapped sync.Once
)

// Register appends fn to the codec search path. Search functions run
// in registration order and the first to recognize a name wins;
// Register never replaces or removes an existing function.
func Register(fn SearchFunc) error {
	if fn == nil {
		return ErrNotCallable
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	searchPath = append(searchPath, fn)
	// A newly registered function may resolve names a cached miss
	// already gave up on, or shadow an earlier hit for the same
	// name with a different entry; invalidate the whole cache rather
	// than reason about which entries are still valid.
	searchCache = map[string]Entry{}
	return nil
}

// normalizeEncodingName lowercases the name and maps spaces and hyphens
// to underscores, the same normalization CPython's import machinery
// applies before consulting the encodings package.
func normalizeEncodingName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// Lookup resolves name to a codec Entry, normalizing the name and
// consulting the memoized cache before walking the search path in
// registration order.
func Lookup(name string) (Entry, error) {
	bootstrapped.Do(registerBuiltinCodecs)

	key := normalizeEncodingName(name)

	registryMu.RLock()
	if e, ok := searchCache[key]; ok {
		registryMu.RUnlock()
		return e, nil
	}
	path := make([]SearchFunc, len(searchPath))
	copy(path, searchPath)
	registryMu.RUnlock()

	for _, fn := range path {
		if e, ok := fn(key); ok {
			registryMu.Lock()
			searchCache[key] = e
			registryMu.Unlock()
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// Encode looks up encoding and runs its Encoder over s.
func Encode(s string, encoding string, errors string) ([]byte, error) {
	e, err := Lookup(encoding)
	if err != nil {
		return nil, err
	}
	if e.Encoder == nil {
		return nil, fmt.Errorf("%w: %q has no encoder", ErrUnknownEncoding, encoding)
	}
	out, _, err := e.Encoder(s, errors)
	return out, err
}

// Decode looks up encoding and runs its Decoder over b.
func Decode(b []byte, encoding string, errors string) (string, error) {
	e, err := Lookup(encoding)
	if err != nil {
		return "", err
	}
	if e.Decoder == nil {
		return "", fmt.Errorf("%w: %q has no decoder", ErrUnknownEncoding, encoding)
	}
	out, _, err := e.Decoder(b, errors)
	return out, err
}

var (
	errorRegistryMu sync.RWMutex
	errorHandlers   = map[string]ErrorHandler{}
)

// RegisterError registers handler under name, so it can be looked up by
// the `errors` argument passed to any Encode/Decode call.
func RegisterError(name string, handler ErrorHandler) error {
	if handler == nil {
		return ErrNotCallable
	}
	errorRegistryMu.Lock()
	defer errorRegistryMu.Unlock()
	errorHandlers[name] = handler
	return nil
}

// LookupError resolves name to a registered ErrorHandler.
func LookupError(name string) (ErrorHandler, error) {
	bootstrapped.Do(registerBuiltinCodecs)

	errorRegistryMu.RLock()
	defer errorRegistryMu.RUnlock()
	h, ok := errorHandlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownErrorHandler, name)
	}
	return h, nil
}

// registerBuiltinCodecs is the one-shot bootstrap latch: it registers
// every codec and error handler this package implements exactly once,
// the first time Lookup or LookupError is called. Mirrors
// codec_need_encodings's "already bootstrapped" short circuit, reified
// as sync.Once instead of a boolean flag plus re-entrancy guard.
func registerBuiltinCodecs() {
	registerErrorHandlers()
	searchPath = append(searchPath, builtinSearch)
}
