package assembler

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats gofpdf embeds directly from the file; everything else raster is
// decoded and re-encoded as PNG first.
var nativeImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// place puts one image onto the current (template-shaped) page, either
// scaled to the printable area or tiled at native size.
func (a *Assembler) place(entry *ImageEntry) error {
	if strings.EqualFold(filepath.Ext(entry.Path), ".svg") {
		return a.placeSVG(entry.Path)
	}
	name, err := a.registerImage(entry)
	if err != nil {
		return err
	}
	if a.opts.Tile {
		return a.tileImage(name, entry)
	}
	a.fitImage(name)
	return nil
}

// registerImage makes the image available to the document under its path and
// returns that name. The decoded resource is registered once; tiling then
// places any number of references to it.
func (a *Assembler) registerImage(entry *ImageEntry) (string, error) {
	if nativeImageTypes[strings.ToLower(filepath.Ext(entry.Path))] {
		a.pdf.RegisterImageOptions(entry.Path, gofpdf.ImageOptions{})
		if a.pdf.Err() {
			return "", fmt.Errorf("%w: %s: %v", ErrImageDecode, entry.Path, a.pdf.Error())
		}
		return entry.Path, nil
	}

	f, err := os.Open(entry.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrImageDecode, entry.Path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrImageDecode, entry.Path, err)
	}
	bounds := img.Bounds()
	entry.width = float64(bounds.Dx())
	entry.height = float64(bounds.Dy())
	entry.loaded = true

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrImageDecode, entry.Path, err)
	}
	a.pdf.RegisterImageOptionsReader(entry.Path, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if a.pdf.Err() {
		return "", fmt.Errorf("%w: %s: %v", ErrImageDecode, entry.Path, a.pdf.Error())
	}
	return entry.Path, nil
}

// dimensions returns the image's pixel width and height, reading the file
// header on first call only.
func (e *ImageEntry) dimensions() (float64, float64, error) {
	if e.loaded {
		return e.width, e.height, nil
	}
	f, err := os.Open(e.Path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	e.width = float64(cfg.Width)
	e.height = float64(cfg.Height)
	e.loaded = true
	return e.width, e.height, nil
}

// fitRect is the printable area of a page: the page minus the bleed margin
// on all four sides. Fit mode stretches the image to exactly this box,
// regardless of the image's own dimensions or aspect ratio.
func fitRect(geom PageGeometry) (x, y, w, h float64) {
	return bleedMargin, bleedMargin, geom.Width - 2*bleedMargin, geom.Height - 2*bleedMargin
}

func (a *Assembler) fitImage(name string) {
	x, y, w, h := fitRect(a.geometry)
	a.pdf.ImageOptions(name, x, y, w, h, false, gofpdf.ImageOptions{}, 0, "")
}

// tileCounts returns how many copies of an imgW x imgH image are needed to
// cover the page in each direction, letting the last row and column overhang.
func tileCounts(geom PageGeometry, imgW, imgH float64) (horizontal, vertical int) {
	return int(math.Ceil(geom.Width / imgW)), int(math.Ceil(geom.Height / imgH))
}

// tilePositions returns the top-left corner of every tile in placement
// order: left to right, bottom row first, measured in the document's
// top-left-origin coordinates. One pixel maps to one point.
func tilePositions(geom PageGeometry, imgW, imgH float64) [][2]float64 {
	horizontal, vertical := tileCounts(geom, imgW, imgH)
	positions := make([][2]float64, 0, horizontal*vertical)
	for j := 0; j < vertical; j++ {
		for i := 0; i < horizontal; i++ {
			x := float64(i) * imgW
			y := geom.Height - float64(j+1)*imgH
			positions = append(positions, [2]float64{x, y})
		}
	}
	return positions
}

func (a *Assembler) tileImage(name string, entry *ImageEntry) error {
	imgW, imgH, err := entry.dimensions()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrImageDecode, entry.Path, err)
	}
	if imgW <= 0 || imgH <= 0 {
		return fmt.Errorf("%w: %s: zero-sized image", ErrImageDecode, entry.Path)
	}
	for _, pos := range tilePositions(a.geometry, imgW, imgH) {
		a.pdf.ImageOptions(name, pos[0], pos[1], imgW, imgH, false, gofpdf.ImageOptions{}, 0, "")
	}
	return nil
}

// placeSVG draws a basic SVG, stretched to the printable area in fit mode or
// repeated at native size in tile mode.
func (a *Assembler) placeSVG(path string) error {
	sg, err := gofpdf.SVGBasicFileParse(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}
	if sg.Wd <= 0 || sg.Ht <= 0 {
		return fmt.Errorf("%w: %s: zero-sized drawing", ErrImageDecode, path)
	}

	if a.opts.Tile {
		for _, pos := range tilePositions(a.geometry, sg.Wd, sg.Ht) {
			a.pdf.SetXY(pos[0], pos[1])
			a.pdf.SVGBasicWrite(&sg, 1.0)
		}
		return nil
	}

	x, y, w, h := fitRect(a.geometry)
	a.pdf.TransformBegin()
	a.pdf.TransformScale(w/sg.Wd*100, h/sg.Ht*100, x, y)
	a.pdf.SetXY(x, y)
	a.pdf.SVGBasicWrite(&sg, 1.0)
	a.pdf.TransformEnd()
	return nil
}
