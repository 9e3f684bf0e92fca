// Package bindings contains all CGO bindings to the platform libc locale
// subsystem.
//
// # Design Principles
//
// 1. Isolation: ALL CGO code lives in this package. No other package may
//    import "C". This keeps the cgo surface auditable and lets the rest of
//    the module stay pure Go.
//
// 2. Minimal Surface: only the calls the bridge needs are wrapped
//    (newlocale/uselocale/freelocale, mbrtowc/wcrtomb, the iswspace family
//    and nl_langinfo). Nothing else from locale.h is exposed.
//
// 3. Error Handling: C failure codes become Go sentinel errors at this
//    boundary. Callers never see errno or raw return codes.
//
// 4. Scoped Contexts: every operation builds its own locale handle, installs
//    it on the calling OS thread, and restores the previous context before
//    returning. The guard pins the goroutine to its thread for the duration,
//    since uselocale is thread-scoped. No handle outlives a call.
//
// # Threading
//
// Operations are safe to call from concurrent goroutines: each one pins its
// own OS thread and never touches the process-global locale. Re-entering the
// bridge from a signal handler on the same thread is undefined.
package bindings
