package assembler

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	contribfpdi "github.com/jung-kurt/gofpdf/contrib/gofpdi"
	realfpdi "github.com/phpdave11/gofpdi"
)

// pdfInfo describes an existing PDF: its page count and the media box of
// every page, keyed the way gofpdi reports them.
type pdfInfo struct {
	PageCount int
	Sizes     map[int]map[string]map[string]float64
}

// pageGeometry returns the width and height of the given 1-based page.
func (info *pdfInfo) pageGeometry(page int) (PageGeometry, bool) {
	box, ok := info.Sizes[page]["/MediaBox"]
	if !ok {
		return PageGeometry{}, false
	}
	return PageGeometry{Width: box["w"], Height: box["h"]}, true
}

// probePDF opens an existing PDF and reads its page count and page sizes
// without touching any output document. The gofpdi reader panics on missing
// or malformed files, so the parse is fenced with a recover.
func probePDF(path string) (info *pdfInfo, err error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("parsing %s: %v", path, r)
		}
	}()
	imp := realfpdi.NewImporter()
	imp.SetSourceFile(path)
	info = &pdfInfo{
		PageCount: imp.GetNumPages(),
		Sizes:     imp.GetPageSizes(),
	}
	if info.PageCount < 1 {
		return nil, fmt.Errorf("parsing %s: document has no pages", path)
	}
	return info, nil
}

// importPage imports one page of an existing PDF into pdf as a reusable
// template object, converting gofpdi panics into errors.
func importPage(pdf *gofpdf.Fpdf, imp *contribfpdi.Importer, path string, page int) (id int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("importing page %d of %s: %v", page, path, r)
		}
	}()
	id = imp.ImportPage(pdf, path, page, "/MediaBox")
	return id, nil
}
