package wclocale

import "github.com/wclocale/wclocale/internal/bindings"

// DecodeRune converts a byte sequence holding exactly one encoded character
// to that character, under the Utf8Preferred locale. The decode must consume
// every byte of b: shorter or longer valid prefixes, truncated sequences and
// invalid sequences all fail with ErrConversionIncomplete.
func DecodeRune(b []byte) (rune, error) {
	r, err := bindings.DecodeRune(Utf8Preferred.names(), b)
	if err != nil {
		return 0, opError("DecodeRune", err)
	}
	return r, nil
}

// EncodeRune converts one character to its encoded byte sequence under the
// Utf8Preferred locale. For every character DecodeRune can produce,
// DecodeRune(EncodeRune(r)) yields r again.
func EncodeRune(r rune) ([]byte, error) {
	b, err := bindings.EncodeRune(Utf8Preferred.names(), r)
	if err != nil {
		return nil, opError("EncodeRune", err)
	}
	return b, nil
}
