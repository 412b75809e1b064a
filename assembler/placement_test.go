package assembler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFitRect(t *testing.T) {
	tests := []struct {
		name string
		geom PageGeometry
	}{
		{"portrait page", PageGeometry{Width: 600, Height: 800}},
		{"landscape page", PageGeometry{Width: 842, Height: 595}},
		{"square page", PageGeometry{Width: 500, Height: 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := fitRect(tt.geom)
			if x != bleedMargin || y != bleedMargin {
				t.Errorf("fit origin = (%.1f, %.1f), want (%.1f, %.1f)", x, y, bleedMargin, bleedMargin)
			}
			if w != tt.geom.Width-2*bleedMargin {
				t.Errorf("fit width = %.1f, want %.1f", w, tt.geom.Width-2*bleedMargin)
			}
			if h != tt.geom.Height-2*bleedMargin {
				t.Errorf("fit height = %.1f, want %.1f", h, tt.geom.Height-2*bleedMargin)
			}
		})
	}
}

func TestTileCounts(t *testing.T) {
	tests := []struct {
		name       string
		geom       PageGeometry
		imgW, imgH float64
		wantH      int
		wantV      int
	}{
		{"exact fit", PageGeometry{600, 800}, 300, 400, 2, 2},
		{"overhang on both axes", PageGeometry{621, 842}, 300, 400, 3, 3},
		{"single oversized tile", PageGeometry{600, 800}, 700, 900, 1, 1},
		{"degenerate one pixel image", PageGeometry{600, 800}, 1, 1, 600, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotH, gotV := tileCounts(tt.geom, tt.imgW, tt.imgH)
			if gotH != tt.wantH || gotV != tt.wantV {
				t.Errorf("tileCounts() = (%d, %d), want (%d, %d)", gotH, gotV, tt.wantH, tt.wantV)
			}
		})
	}
}

func TestTilePositions(t *testing.T) {
	geom := PageGeometry{Width: 621, Height: 842}
	positions := tilePositions(geom, 300, 400)

	if len(positions) != 9 {
		t.Fatalf("got %d positions, want 9", len(positions))
	}

	// Bottom row first, left to right: first tile sits flush with the
	// bottom-left corner in top-left-origin coordinates.
	first := positions[0]
	if first[0] != 0 || first[1] != 842-400 {
		t.Errorf("first tile at (%.0f, %.0f), want (0, 442)", first[0], first[1])
	}

	// The last tile is top-right and overhangs both edges.
	last := positions[len(positions)-1]
	if last[0] != 600 {
		t.Errorf("last tile x = %.0f, want 600", last[0])
	}
	if last[1] != 842-3*400 {
		t.Errorf("last tile y = %.0f, want %d", last[1], 842-3*400)
	}
	if last[1] >= 0 {
		t.Error("top row should overhang the top edge")
	}

	// Grid positions are exact multiples of the image size.
	for idx, pos := range positions {
		i := idx % 3
		j := idx / 3
		if pos[0] != float64(i)*300 {
			t.Errorf("tile %d x = %.0f, want %.0f", idx, pos[0], float64(i)*300)
		}
		if pos[1] != geom.Height-float64(j+1)*400 {
			t.Errorf("tile %d y = %.0f, want %.0f", idx, pos[1], geom.Height-float64(j+1)*400)
		}
	}
}

func TestImageEntryDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	makeTestPNG(t, path, 123, 45)

	entry := &ImageEntry{Path: path}
	w, h, err := entry.dimensions()
	if err != nil {
		t.Fatalf("dimensions() error: %v", err)
	}
	if w != 123 || h != 45 {
		t.Errorf("dimensions() = (%.0f, %.0f), want (123, 45)", w, h)
	}

	// Second call serves the cached values even if the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	w, h, err = entry.dimensions()
	if err != nil {
		t.Fatalf("cached dimensions() error: %v", err)
	}
	if w != 123 || h != 45 {
		t.Errorf("cached dimensions() = (%.0f, %.0f), want (123, 45)", w, h)
	}
}

func TestImageEntryDimensionsMissingFile(t *testing.T) {
	entry := &ImageEntry{Path: filepath.Join(t.TempDir(), "missing.png")}
	if _, _, err := entry.dimensions(); err == nil {
		t.Error("dimensions() on a missing file should fail")
	}
}
