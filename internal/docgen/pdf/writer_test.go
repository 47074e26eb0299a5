package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/superbill/superbill/internal/domain/superbill"
)

func syntheticPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(y % 256), G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding synthetic image: %v", err)
	}
	return buf.Bytes()
}

func TestWriteSinglePage(t *testing.T) {
	out, err := NewWriter(NaiveBandSplit{}).Write(syntheticPNG(t, 170, 257))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestWriteMultiPage(t *testing.T) {
	// 170px wide at 1px/mm: 600px of height spans three 257mm pages.
	out, err := NewWriter(NaiveBandSplit{}).Write(syntheticPNG(t, 170, 600))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
	pages := bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
	if pages < 2 {
		t.Errorf("expected a multi-page document, counted %d page objects", pages)
	}
}

func TestWriteRejectsGarbage(t *testing.T) {
	if _, err := NewWriter(nil).Write([]byte("not a png")); err == nil {
		t.Error("expected decode error")
	}
}

func TestExportFilename(t *testing.T) {
	sb := &superbill.Superbill{
		PatientName: "Jane Ann Doe",
		IssueDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	if got := ExportFilename(sb); got != "Superbill-Jane-Ann-Doe-03-01-2025.pdf" {
		t.Errorf("got %q", got)
	}
}
