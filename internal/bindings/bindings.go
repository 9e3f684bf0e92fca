//go:build cgo && !windows

package bindings

/*
#include <langinfo.h>
#include <limits.h>
#include <locale.h>
#include <stdlib.h>
#include <wchar.h>
#include <wctype.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// guard holds an installed LC_CTYPE locale context. It exists for the span
// of exactly one bridge operation: acquire, defer release, do the work.
type guard struct {
	loc  C.locale_t
	prev C.locale_t
}

// acquire resolves the first loadable name in locales for the LC_CTYPE
// category, pins the calling goroutine to its OS thread, and installs the
// locale as the thread's active context. uselocale is thread-scoped, so the
// pin is what keeps the context from leaking onto a thread another goroutine
// is about to run on.
//
// Callers must defer release immediately on success.
func acquire(locales []string) (*guard, error) {
	var loc C.locale_t
	for _, name := range locales {
		cname := C.CString(name)
		loc = C.newlocale(C.LC_CTYPE_MASK, cname, nil)
		C.free(unsafe.Pointer(cname))
		if loc != nil {
			break
		}
	}
	if loc == nil {
		return nil, ErrLocaleUnavailable
	}
	runtime.LockOSThread()
	return &guard{loc: loc, prev: C.uselocale(loc)}, nil
}

// release reinstalls the context that was active before acquire, frees the
// handle, and unpins the thread. It runs on every exit path, failed
// operations included.
func (g *guard) release() {
	C.uselocale(g.prev)
	C.freelocale(g.loc)
	runtime.UnlockOSThread()
}

// DecodeRune converts one encoded byte sequence to a single wide character
// under the first loadable locale in locales. The decode succeeds only when
// mbrtowc consumes exactly len(b) bytes; partial, over-long, truncated and
// invalid sequences all report ErrConversionIncomplete.
func DecodeRune(locales []string, b []byte) (rune, error) {
	if len(b) == 0 {
		return 0, ErrConversionIncomplete
	}
	g, err := acquire(locales)
	if err != nil {
		return 0, err
	}
	defer g.release()

	var wc C.wchar_t
	var state C.mbstate_t // zero value is the initial shift state
	n := C.mbrtowc(&wc, (*C.char)(unsafe.Pointer(&b[0])), C.size_t(len(b)), &state)
	if n != C.size_t(len(b)) {
		return 0, ErrConversionIncomplete
	}
	return rune(wc), nil
}

// EncodeRune converts one wide character to its encoded byte sequence under
// the first loadable locale in locales. wcrtomb must report a strictly
// positive byte count; anything else is ErrEncodingFailure.
func EncodeRune(locales []string, r rune) ([]byte, error) {
	g, err := acquire(locales)
	if err != nil {
		return nil, err
	}
	defer g.release()

	buf := make([]byte, C.MB_LEN_MAX)
	var state C.mbstate_t
	n := C.wcrtomb((*C.char)(unsafe.Pointer(&buf[0])), C.wchar_t(r), &state)
	if n == 0 || n > C.size_t(C.MB_LEN_MAX) {
		return nil, ErrEncodingFailure
	}
	return buf[:n:n], nil
}

// IsSpace reports whether r is whitespace under the first loadable locale in
// locales. Unlike the other classifiers it surfaces acquisition failure, so
// callers can tell "not space" from "could not ask".
func IsSpace(locales []string, r rune) (bool, error) {
	g, err := acquire(locales)
	if err != nil {
		return false, err
	}
	defer g.release()

	return C.iswspace(C.wint_t(r)) != 0, nil
}

// IsBlank reports whether r is a blank (word-separating) character. When no
// requested locale resolves, the classification runs against the thread's
// current context instead of failing.
func IsBlank(locales []string, r rune) bool {
	g, err := acquire(locales)
	if err != nil {
		return C.iswblank(C.wint_t(r)) != 0
	}
	defer g.release()

	return C.iswblank(C.wint_t(r)) != 0
}

// ToUpper maps r to its uppercase form, or returns r unchanged when the
// locale lists no mapping. Falls back to the thread's current context when
// no requested locale resolves.
func ToUpper(locales []string, r rune) rune {
	g, err := acquire(locales)
	if err != nil {
		return rune(C.towupper(C.wint_t(r)))
	}
	defer g.release()

	return rune(C.towupper(C.wint_t(r)))
}

// ToLower maps r to its lowercase form, or returns r unchanged when the
// locale lists no mapping. Falls back to the thread's current context when
// no requested locale resolves.
func ToLower(locales []string, r rune) rune {
	g, err := acquire(locales)
	if err != nil {
		return rune(C.towlower(C.wint_t(r)))
	}
	defer g.release()

	return rune(C.towlower(C.wint_t(r)))
}

// Codeset returns the character encoding name of the calling thread's
// current locale context, e.g. "UTF-8" or "ANSI_X3.4-1968". The bridge never
// installs a context across calls, so outside a guard this observes whatever
// the process environment left in place.
func Codeset() (string, error) {
	return C.GoString(C.nl_langinfo(C.CODESET)), nil
}
