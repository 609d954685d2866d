package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seqpilot/runreport/internal/model"
)

// createTestContext creates a rendered-ready context for writer tests.
func createTestContext(kind model.Kind) *model.Context {
	ctx := &model.Context{
		Kind:            kind,
		PipelineName:    testPipelineName,
		PipelineSource:  testPipelineSource,
		PipelineVersion: "1.4.2",
		BWA:             "0.7.12",
		STAR:            "2.4.2a",
		Samtools:        "1.3",
		Qualimap:        "2.1",
		StringTie:       "1.2.2",
		SnpEff:          "4.1",
		GATK:            "3.3-0",
		DBSnp:           "138",
		Reference:       "hg19.fa",
		Transcripts:     "gencode.v19.gtf",
		KnownIndels: []string{
			"{fileA version: 1.2}",
			"{fileB version: Unknown}",
		},
	}
	return ctx
}

// TestTextWriter tests the plain-text README writer.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes rendered report to output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)

		n, err := w.Write(createTestContext(model.KindDNA))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}

		output := buf.String()
		if !strings.Contains(output, "DNA variant calling (best practice)") {
			t.Error("expected output to contain section header")
		}
		if !strings.Contains(output, "versions of programs and references used") {
			t.Error("expected output to contain versions block header")
		}
		if !strings.Contains(output, testPipelineSource) {
			t.Error("expected output to contain footer source location")
		}
	})

	t.Run("returns error for unknown kind", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)

		if _, err := w.Write(&model.Context{Kind: model.Kind("bogus")}); err == nil {
			t.Error("expected error for unknown report kind")
		}
	})
}

// TestMarkdownWriter tests the Markdown rendition.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes version table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestContext(model.KindDNA)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# SeqPilot run summary") {
			t.Error("expected output to contain title")
		}
		if !strings.Contains(output, "gatk") || !strings.Contains(output, "3.3-0") {
			t.Error("expected output to contain gatk version row")
		}
		if !strings.Contains(output, "indel resource file") {
			t.Error("expected output to contain indel resource rows")
		}
	})

	t.Run("omits mask file row when absent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestContext(model.KindRNA)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "mask file") {
			t.Error("expected no mask file row when mask file is absent")
		}
	})

	t.Run("includes mask file row when present", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		ctx := createTestContext(model.KindRNA)
		ctx.MaskFile = "/refs/rRNA_mask.gtf"
		if _, err := w.Write(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "/refs/rRNA_mask.gtf") {
			t.Error("expected mask file row with path")
		}
	})
}
