package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// newTestLogger returns a logger writing through a PrivacyHandler into buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	handler := NewPrivacyHandler(slog.NewTextHandler(buf, nil))
	return slog.New(handler)
}

// TestPrivacyHandler tests masking of sample-identifying attributes.
func TestPrivacyHandler(t *testing.T) {
	t.Parallel()

	t.Run("masks identifier keys", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("rendering report", "sample_id", "P0417-T1", "kind", "dna")

		output := buf.String()
		if strings.Contains(output, "P0417-T1") {
			t.Error("expected sample_id value to be masked")
		}
		if !strings.Contains(output, MaskValue) {
			t.Error("expected mask value in output")
		}
		if !strings.Contains(output, "dna") {
			t.Error("expected non-identifying attribute to pass through")
		}
	})

	t.Run("masks accession-shaped values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("rendering report", "run", "SAMEA1234567")

		if strings.Contains(buf.String(), "SAMEA1234567") {
			t.Error("expected accession value to be masked")
		}
	})

	t.Run("masks barcode-shaped values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("rendering report", "index", "ACGTACGT-TGCATGCA")

		if strings.Contains(buf.String(), "ACGTACGT-TGCATGCA") {
			t.Error("expected barcode value to be masked")
		}
	})

	t.Run("masks attributes inside groups", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("rendering report", slog.Group("run", slog.String("patient", "DOE-JANE")))

		if strings.Contains(buf.String(), "DOE-JANE") {
			t.Error("expected grouped identifier to be masked")
		}
	})

	t.Run("masks attributes added via WithAttrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf).With("barcode", "ACGTACGTAC")

		logger.Info("rendering report")

		if strings.Contains(buf.String(), "ACGTACGTAC") {
			t.Error("expected WithAttrs identifier to be masked")
		}
	})

	t.Run("passes ordinary values through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("rendering report", "output", "/results/run42/README.txt")

		if !strings.Contains(buf.String(), "/results/run42/README.txt") {
			t.Error("expected ordinary attribute to pass through")
		}
	})
}
