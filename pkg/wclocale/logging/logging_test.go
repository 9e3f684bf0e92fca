package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewNilBindsDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.With("selector", "ambient").Info(context.Background(), "probe")

	out := buf.String()
	if !strings.Contains(out, "selector=ambient") {
		t.Fatalf("expected selector attribute in output, got %q", out)
	}
	if !strings.Contains(out, "probe") {
		t.Fatalf("expected message in output, got %q", out)
	}
}
