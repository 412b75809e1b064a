package assembler

import (
	"errors"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// bleedMargin is the border, in points, reserved around fitted page content
// for print-trim tolerance. It is a property of the assembler, not user input.
const bleedMargin = 25.0

// Sentinel errors for the failure classes an assembly run can hit. All of
// them are fatal for the directory being processed; none of them should stop
// a multi-directory run.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrMatterNotFound   = errors.New("matter document not found")
	ErrImageDecode      = errors.New("image decode failed")
	ErrOutputWrite      = errors.New("output write failed")
)

// PageGeometry is the page size, in points, taken from the template's last
// page. It is computed once per run and never changes afterwards.
type PageGeometry struct {
	Width  float64
	Height float64
}

// ImageEntry is one discovered image file plus its pixel dimensions, read
// lazily on first use and at most once.
type ImageEntry struct {
	Path string

	width  float64
	height float64
	loaded bool
}

// Options configures a single assembly run.
type Options struct {
	TemplatePath    string // page template PDF, cloned for every image page
	FrontMatterPath string // optional PDF prepended before the image pages
	BackMatterPath  string // optional PDF appended after the image pages
	Tile            bool   // tile images at native size instead of fitting
	SkipSeparators  bool   // do not insert blank pages between image pages
	Verbose         bool
}

// Assembler builds one output PDF from a list of image files. Create one per
// input directory; it is not safe for reuse across runs.
type Assembler struct {
	outputPath string
	opts       Options

	pdf      *gofpdf.Fpdf
	geometry PageGeometry
	tplImp   *gofpdi.Importer
	tplID    int
	offset   int // pages consumed by front matter
}

// New creates an Assembler that will write its document to outputPath.
func New(outputPath string, opts Options) *Assembler {
	if opts.TemplatePath == "" {
		opts.TemplatePath = "template.pdf"
	}
	return &Assembler{
		outputPath: outputPath,
		opts:       opts,
	}
}
