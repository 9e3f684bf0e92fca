package wclocale

import "github.com/wclocale/wclocale/internal/bindings"

// Codeset returns the character encoding name of the calling thread's
// current locale context, e.g. "UTF-8". The bridge never changes that
// context across calls, so Codeset observed before and after any operation
// reports the same value. Without cgo it fails with ErrCGONotEnabled.
func Codeset() (string, error) {
	cs, err := bindings.Codeset()
	if err != nil {
		return "", opError("Codeset", err)
	}
	return cs, nil
}
