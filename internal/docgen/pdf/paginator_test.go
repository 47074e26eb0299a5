package pdf

import "testing"

// A 1700px-wide image scales to the 170mm content width at 10px/mm, so
// 2570px of height lands exactly on one 257mm content height.

func TestSplitExactFitStaysOnOnePage(t *testing.T) {
	bands := NaiveBandSplit{}.Split(1700, 2570)
	if len(bands) != 1 {
		t.Fatalf("got %d bands, want 1", len(bands))
	}
	if bands[0].Y != 0 || bands[0].Height != 2570 {
		t.Errorf("band = %+v, want the whole image", bands[0])
	}
}

func TestSplitOnePixelOverForcesSecondPage(t *testing.T) {
	bands := NaiveBandSplit{}.Split(1700, 2571)
	if len(bands) != 2 {
		t.Fatalf("got %d bands, want 2", len(bands))
	}
}

func TestSplitBandsTileTheImage(t *testing.T) {
	const width, height = 1700, 9000
	bands := NaiveBandSplit{}.Split(width, height)
	if len(bands) < 2 {
		t.Fatalf("expected a multi-page split, got %d bands", len(bands))
	}

	covered := 0
	for i, b := range bands {
		if b.Y != covered {
			t.Errorf("band %d starts at %d, want %d (no gaps or overlaps)", i, b.Y, covered)
		}
		if b.Height <= 0 {
			t.Errorf("band %d has non-positive height %d", i, b.Height)
		}
		covered += b.Height
	}
	if covered != height {
		t.Errorf("bands cover %d px, want %d", covered, height)
	}
}

func TestSplitPageCountMatchesCeil(t *testing.T) {
	// 1700px wide: each page holds 2570px of source height.
	cases := []struct {
		heightPx int
		pages    int
	}{
		{1, 1},
		{2570, 1},
		{2571, 2},
		{5140, 2},
		{5141, 3},
	}
	for _, c := range cases {
		if got := len(NaiveBandSplit{}.Split(1700, c.heightPx)); got != c.pages {
			t.Errorf("height %d: got %d pages, want %d", c.heightPx, got, c.pages)
		}
	}
}

func TestSplitDegenerateInput(t *testing.T) {
	if bands := (NaiveBandSplit{}).Split(0, 100); bands != nil {
		t.Errorf("zero width: got %v", bands)
	}
	if bands := (NaiveBandSplit{}).Split(100, 0); bands != nil {
		t.Errorf("zero height: got %v", bands)
	}
}
