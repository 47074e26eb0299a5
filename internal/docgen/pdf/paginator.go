// Package pdf turns a rendered document image into a paginated A4 PDF:
// a rasterizer produces one tall PNG from the combined HTML, a paginator
// slices it into per-page bands, and the writer embeds each band as a page.
package pdf

import "math"

// A4 geometry in millimetres. Content area is the page minus the margins on
// each side.
const (
	PageWidthMM     = 210.0
	PageHeightMM    = 297.0
	MarginMM        = 20.0
	ContentWidthMM  = PageWidthMM - 2*MarginMM
	ContentHeightMM = PageHeightMM - 2*MarginMM
)

// Band is one horizontal slice of the source image, in source pixels.
type Band struct {
	Y      int
	Height int
}

// Paginator decides how a source image of the given pixel dimensions splits
// into page bands.
type Paginator interface {
	Split(widthPx, heightPx int) []Band
}

// NaiveBandSplit slices the image into equal-height bands, one per page,
// without regard to content. A band may cut through a table row or a
// paragraph. A future content-aware implementation can slot in behind the
// Paginator interface without touching the writer.
type NaiveBandSplit struct{}

// Split scales the image to the content width and counts how many content
// heights it spans. An image that fits exactly in one page stays whole; a
// taller one splits into totalPages equal source bands, the last clamped to
// the remaining height.
func (NaiveBandSplit) Split(widthPx, heightPx int) []Band {
	if widthPx <= 0 || heightPx <= 0 {
		return nil
	}

	scaledHeightMM := float64(heightPx) * ContentWidthMM / float64(widthPx)
	if scaledHeightMM <= ContentHeightMM {
		return []Band{{Y: 0, Height: heightPx}}
	}

	totalPages := int(math.Ceil(scaledHeightMM / ContentHeightMM))
	bandHeight := float64(heightPx) / float64(totalPages)

	bands := make([]Band, 0, totalPages)
	for page := 0; page < totalPages; page++ {
		y := int(bandHeight * float64(page))
		h := int(bandHeight)
		if y+h > heightPx || page == totalPages-1 {
			h = heightPx - y
		}
		bands = append(bands, Band{Y: y, Height: h})
	}
	return bands
}
