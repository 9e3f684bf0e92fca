// Command wclocale-probe reports what the host's locale subsystem offers the
// bridge: whether a UTF-8 locale resolves, what the ambient environment names,
// and how a few sample characters classify under it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/wclocale/wclocale/pkg/wclocale"
	"github.com/wclocale/wclocale/pkg/wclocale/logging"
)

func main() {
	log := logging.New(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	})))
	ctx := context.Background()

	codeset, err := wclocale.Codeset()
	if err != nil {
		if errors.Is(err, wclocale.ErrCGONotEnabled) {
			log.Warn(ctx, "native locale subsystem unavailable", "err", err)
			return
		}
		log.Error(ctx, "codeset probe failed", "err", err)
		os.Exit(1)
	}
	log.Info(ctx, "ambient locale",
		"codeset", codeset,
		"language", wclocale.Ambient.Tag().String(),
		"chain", wclocale.Utf8Preferred.Names())

	encoded, err := wclocale.EncodeRune('é')
	if err != nil {
		if errors.Is(err, wclocale.ErrLocaleUnavailable) {
			log.Error(ctx, "no UTF-8 locale resolves on this host", "err", err)
			os.Exit(1)
		}
		log.Error(ctx, "encode probe failed", "err", err)
		os.Exit(1)
	}
	decoded, err := wclocale.DecodeRune(encoded)
	if err != nil {
		log.Error(ctx, "decode probe failed", "err", err)
		os.Exit(1)
	}
	log.Info(ctx, "codec round trip",
		"char", string(decoded),
		"bytes", fmt.Sprintf("% x", encoded))

	for _, r := range []rune{' ', '\u2003', '፡'} {
		space, err := wclocale.IsSpace(r)
		if err != nil {
			log.Warn(ctx, "ambient locale unresolvable", "err", err)
			break
		}
		log.Info(ctx, "classification",
			"char", fmt.Sprintf("%U", r),
			"space", space,
			"blank", wclocale.IsBlank(r))
	}

	log.Info(ctx, "case mapping",
		"upper_i", string(wclocale.ToUpper('i')),
		"lower_I", string(wclocale.ToLower('I')))
}
