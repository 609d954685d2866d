package log

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// identifierKeys contains attribute keys whose values identify a sample
// or study subject. Sample sheet fields routinely end up in log
// attributes, and run logs are shared with collaborators, so these are
// always masked.
var identifierKeys = map[string]bool{
	"sample":       true,
	"sample_id":    true,
	"sampleid":     true,
	"sample_name":  true,
	"subject":      true,
	"subject_id":   true,
	"patient":      true,
	"patient_id":   true,
	"donor":        true,
	"donor_id":     true,
	"barcode":      true,
	"lane_barcode": true,
}

// identifierPatterns matches values that look like subject identifiers
// regardless of key name.
var identifierPatterns = []*regexp.Regexp{
	// Accession-style sample identifiers (e.g. SAMEA1234567, SRS123456).
	regexp.MustCompile(`^(SAM[END]A?|SRS|ERS|DRS)\d+$`),

	// Dual-index barcode pairs (e.g. ACGTACGT-TGCATGCA).
	regexp.MustCompile(`^[ACGT]{6,12}-[ACGT]{6,12}$`),
}

// MaskValue is the string used to replace identifying values.
const MaskValue = "***MASKED***"

// PrivacyHandler wraps an slog.Handler to mask sample-identifying
// attributes before they reach the underlying handler. It integrates
// with standard slog APIs and works with any underlying handler.
type PrivacyHandler struct {
	handler slog.Handler
}

// NewPrivacyHandler creates a PrivacyHandler wrapping the given handler.
// If handler is nil, the returned PrivacyHandler wraps slog.Default's
// handler.
func NewPrivacyHandler(handler slog.Handler) *PrivacyHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PrivacyHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given
// level. It delegates to the underlying handler.
func (h *PrivacyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying
// handler.
func (h *PrivacyHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added,
// masked first.
func (h *PrivacyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &PrivacyHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *PrivacyHandler) WithGroup(name string) slog.Handler {
	return &PrivacyHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursively handling groups.
func (h *PrivacyHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if identifierKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString {
		value := a.Value.String()
		for _, pattern := range identifierPatterns {
			if pattern.MatchString(value) {
				return slog.String(a.Key, MaskValue)
			}
		}
	}

	return a
}
