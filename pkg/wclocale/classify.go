package wclocale

import "github.com/wclocale/wclocale/internal/bindings"

// IsSpace reports whether r is whitespace under the ambient locale. The
// result is tri-state: a definite boolean, or ErrLocaleUnavailable when the
// ambient locale cannot be loaded. Locale-specific separators (such as the
// Ethiopic wordspace under an Ethiopic locale) count as whitespace even when
// the generic Unicode tables disagree.
func IsSpace(r rune) (bool, error) {
	ok, err := bindings.IsSpace(Ambient.names(), r)
	if err != nil {
		return false, opError("IsSpace", err)
	}
	return ok, nil
}

// IsBlank reports whether r is a blank character, that is, whitespace used
// to separate words within a line, under the ambient locale. Unlike IsSpace
// it surfaces no error: if the ambient locale cannot be loaded the
// classification degrades to the default behaviour.
func IsBlank(r rune) bool {
	return bindings.IsBlank(Ambient.names(), r)
}

// ToUpper maps r to the uppercase form listed in the ambient locale, or
// returns r unchanged if none is listed. Only 1:1 mappings are possible;
// characters whose uppercase form is a multi-character string come back
// unchanged. If the ambient locale cannot be loaded the mapping degrades to
// the default behaviour.
func ToUpper(r rune) rune {
	return bindings.ToUpper(Ambient.names(), r)
}

// ToLower maps r to the lowercase form listed in the ambient locale, or
// returns r unchanged if none is listed. The same 1:1 and degradation rules
// as ToUpper apply.
func ToLower(r rune) rune {
	return bindings.ToLower(Ambient.names(), r)
}
