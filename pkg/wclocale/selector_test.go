package wclocale

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSelectorNames(t *testing.T) {
	require.Equal(t, []string{"C.UTF-8", "en_US.UTF-8"}, Utf8Preferred.Names())
	require.Equal(t, []string{""}, Ambient.Names())

	// Names hands out a copy; callers cannot edit the fallback chain.
	names := Utf8Preferred.Names()
	names[0] = "ja_JP.UTF-8"
	require.Equal(t, "C.UTF-8", Utf8Preferred.Names()[0])
}

func TestSelectorString(t *testing.T) {
	require.Equal(t, "utf8-preferred", Utf8Preferred.String())
	require.Equal(t, "ambient", Ambient.String())
}

func TestAmbientTag(t *testing.T) {
	tests := []struct {
		name  string
		lcAll string
		ctype string
		lang  string
		want  language.Tag
	}{
		{"lc_all wins", "tr_TR.UTF-8", "de_DE.UTF-8", "en_US.UTF-8", language.MustParse("tr-TR")},
		{"lc_ctype over lang", "", "de_DE.UTF-8", "en_US.UTF-8", language.MustParse("de-DE")},
		{"lang alone", "", "", "en_US.UTF-8", language.MustParse("en-US")},
		{"modifier stripped", "de_DE.UTF-8@euro", "", "", language.MustParse("de-DE")},
		{"posix is und", "C", "", "", language.Und},
		{"c with codeset is und", "C.UTF-8", "", "", language.Und},
		{"garbage skipped", "not a locale!", "", "am_ET.UTF-8", language.MustParse("am-ET")},
		{"empty environment", "", "", "", language.Und},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_CTYPE", tt.ctype)
			t.Setenv("LANG", tt.lang)
			require.Equal(t, tt.want, Ambient.Tag())
		})
	}
}

func TestUtf8PreferredTag(t *testing.T) {
	t.Setenv("LC_ALL", "tr_TR.UTF-8")
	require.Equal(t, language.Und, Utf8Preferred.Tag())
}
