//go:build !cgo || windows

package bindings

import "unicode"

// Stub implementations for non-CGO builds or Windows. Operations with an
// error channel report ErrCGONotEnabled; the classifiers that surface no
// error degrade to the stdlib unicode tables, which is the default
// behaviour available without libc.

func DecodeRune([]string, []byte) (rune, error) {
	return 0, ErrCGONotEnabled
}

func EncodeRune([]string, rune) ([]byte, error) {
	return nil, ErrCGONotEnabled
}

func IsSpace([]string, rune) (bool, error) {
	return false, ErrCGONotEnabled
}

func IsBlank(_ []string, r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

func ToUpper(_ []string, r rune) rune {
	return unicode.ToUpper(r)
}

func ToLower(_ []string, r rune) rune {
	return unicode.ToLower(r)
}

func Codeset() (string, error) {
	return "", ErrCGONotEnabled
}
