// Package wclocale exposes the platform locale subsystem's character
// classification, case mapping and codeset conversion for single wide
// characters.
//
// Two locale contexts are in play. Codec operations (DecodeRune, EncodeRune)
// always run under a UTF-8 locale so their results do not depend on the
// process environment. Classification and case operations (IsSpace, IsBlank,
// ToUpper, ToLower) run under the ambient locale, resolved fresh from the
// environment on every call, so their results track the user's locale
// preferences:
//
//	os.Setenv("LC_ALL", "en_US.UTF-8")
//	ok, err := wclocale.IsSpace('\u2003') // em space: true under en_US
//
//	os.Setenv("LC_ALL", "tr_TR.UTF-8")
//	wclocale.ToUpper('i') // dotted capital I (U+0130) under tr_TR
//
// These semantics deliberately differ from the unicode package: the platform
// locale can classify characters the generic Unicode tables do not (a
// culture-specific word space) and can map cases the locale-agnostic tables
// cannot (dotted and dotless I).
//
// # Locale scoping
//
// Every operation builds its own locale handle, installs it on the calling
// OS thread for the span of the call, and restores the previous context on
// every exit path. No state leaks to other goroutines or to the caller, and
// nothing is cached: a change to LC_ALL, LC_CTYPE or LANG between two calls
// is observed by the next call.
//
// The per-thread scoping relies on the platform's uselocale(3). Re-entering
// the bridge from a signal handler running on a thread that is mid-call is
// undefined.
//
// # Errors
//
// Failures are sentinel errors (ErrLocaleUnavailable, ErrConversionIncomplete,
// ErrEncodingFailure, ErrCGONotEnabled) wrapped in *Error; match them with
// errors.Is. No operation panics on host locale conditions, and no partial
// result accompanies an error.
//
// Builds without cgo (or on Windows) cannot reach libc: the error-returning
// operations report ErrCGONotEnabled, and IsBlank/ToUpper/ToLower fall back
// to the stdlib unicode tables.
package wclocale
