package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// Writer assembles the final PDF from a rasterized document image using the
// configured paginator.
type Writer struct {
	paginator Paginator
}

func NewWriter(p Paginator) *Writer {
	if p == nil {
		p = NaiveBandSplit{}
	}
	return &Writer{paginator: p}
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Write decodes the PNG-encoded document image, slices it into page bands,
// and embeds one band per A4 page at the content margins. Band images keep
// the content width; height follows from the band's aspect ratio.
func (w *Writer) Write(pngData []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decoding document image: %w", err)
	}

	bounds := img.Bounds()
	bands := w.paginator.Split(bounds.Dx(), bounds.Dy())
	if len(bands) == 0 {
		return nil, fmt.Errorf("document image has no content to paginate")
	}

	src, ok := img.(subImager)
	if !ok {
		return nil, fmt.Errorf("decoded image type %T does not support slicing", img)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(MarginMM, MarginMM, MarginMM)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	for i, band := range bands {
		rect := image.Rect(bounds.Min.X, bounds.Min.Y+band.Y,
			bounds.Max.X, bounds.Min.Y+band.Y+band.Height)

		var encoded bytes.Buffer
		if err := png.Encode(&encoded, src.SubImage(rect)); err != nil {
			return nil, fmt.Errorf("encoding page %d band: %w", i+1, err)
		}

		name := fmt.Sprintf("band-%d", i)
		doc.RegisterImageOptionsReader(name, opts, &encoded)
		doc.AddPage()
		doc.ImageOptions(name, MarginMM, MarginMM, ContentWidthMM, 0, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return out.Bytes(), nil
}
