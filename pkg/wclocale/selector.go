package wclocale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Selector names a locale configuration for the character classification,
// case and codeset category. The bridge supports exactly two: a fixed UTF-8
// configuration for codec correctness and the ambient configuration resolved
// from the process environment.
type Selector int

const (
	// Utf8Preferred resolves "C.UTF-8", falling back to "en_US.UTF-8".
	// Codec operations use it so conversion results do not depend on the
	// environment.
	Utf8Preferred Selector = iota

	// Ambient resolves the locale from the process environment at call
	// time, the way newlocale(3) with an empty name does. Classification
	// and case operations use it.
	Ambient
)

// The chains handed to the bindings. Ambient is the empty name: the
// platform's own environment resolution, never parsed by this package.
var (
	utf8Names    = []string{"C.UTF-8", "en_US.UTF-8"}
	ambientNames = []string{""}
)

func (s Selector) names() []string {
	if s == Ambient {
		return ambientNames
	}
	return utf8Names
}

// Names returns the locale names the selector tries, in order. The slice is
// a copy; the ambient selector reports the single empty name.
func (s Selector) Names() []string {
	names := s.names()
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func (s Selector) String() string {
	if s == Ambient {
		return "ambient"
	}
	return "utf8-preferred"
}

// Tag reports the BCP 47 language tag the ambient environment names,
// consulting LC_ALL, LC_CTYPE and LANG in that order. It exists for
// reporting and diagnostics only; locale resolution itself is always left
// to the platform. Non-ambient selectors and unparseable or C/POSIX
// environments yield language.Und.
func (s Selector) Tag() language.Tag {
	if s != Ambient {
		return language.Und
	}
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		// Strip codeset and modifier suffixes: "tr_TR.UTF-8@euro" -> "tr_TR".
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.Und
}
