//go:build cgo && !windows

package wclocale_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/wclocale/wclocale/pkg/wclocale"
)

// requireUTF8Locale skips the test on hosts where neither C.UTF-8 nor
// en_US.UTF-8 resolves.
func requireUTF8Locale(t *testing.T) {
	t.Helper()
	if _, err := wclocale.DecodeRune([]byte("A")); errors.Is(err, wclocale.ErrLocaleUnavailable) {
		t.Skip("no UTF-8 locale on this host")
	}
}

func TestRoundTrip(t *testing.T) {
	requireUTF8Locale(t)

	var samples []rune
	for r := rune(0x01); r < 0x80; r++ {
		samples = append(samples, r)
	}
	for r := rune(0xA0); r < 0x300; r++ {
		samples = append(samples, r)
	}
	samples = append(samples,
		'፡',          // Ethiopic wordspace
		'\u2003',      // em space
		'\u3000',      // ideographic space
		'世',          // three-byte sequence
		'\U0001F680', // astral plane, four-byte sequence
		'\U0010FFFD',
	)

	for _, r := range samples {
		encoded, err := wclocale.EncodeRune(r)
		require.NoError(t, err, "encode %U", r)
		require.Equal(t, []byte(string(r)), encoded, "encoding of %U under the UTF-8 codeset", r)
		require.Len(t, encoded, utf8.RuneLen(r))

		decoded, err := wclocale.DecodeRune(encoded)
		require.NoError(t, err, "decode %U", r)
		require.Equal(t, r, decoded)
	}
}

func TestDecodeRuneExactLength(t *testing.T) {
	requireUTF8Locale(t)

	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"two complete characters", []byte("AB")},
		{"truncated two-byte sequence", []byte{0xC3}},
		{"truncated four-byte sequence", []byte{0xF0, 0x9F, 0x9A}},
		{"invalid lead byte", []byte{0xFF}},
		{"valid character with trailing byte", []byte{0xC3, 0xA9, 'X'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := wclocale.DecodeRune(tt.in)
			require.ErrorIs(t, err, wclocale.ErrConversionIncomplete)
			require.Zero(t, r)

			var e *wclocale.Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, "DecodeRune", e.Op)
		})
	}
}

func TestCodecIndependentOfEnvironment(t *testing.T) {
	requireUTF8Locale(t)

	// The codec pins its own UTF-8 context; a hostile environment must not
	// degrade it to single-byte decoding.
	t.Setenv("LC_ALL", "C")

	r, err := wclocale.DecodeRune([]byte("é"))
	require.NoError(t, err)
	require.Equal(t, 'é', r)
}

func TestCodecLeavesContextUnchanged(t *testing.T) {
	requireUTF8Locale(t)

	before, err := wclocale.Codeset()
	require.NoError(t, err)

	_, _ = wclocale.DecodeRune([]byte("é"))
	_, _ = wclocale.DecodeRune([]byte{0xFF})
	_, _ = wclocale.EncodeRune('\U0001F680')

	after, err := wclocale.Codeset()
	require.NoError(t, err)
	require.Equal(t, before, after)
}
