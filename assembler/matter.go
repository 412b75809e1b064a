package assembler

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// copyMatter copies every page of the given PDF, in order, onto pages of the
// output document, each keeping its own source size. It returns the number
// of pages copied; an empty path copies nothing and returns 0.
func (a *Assembler) copyMatter(path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	info, err := probePDF(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMatterNotFound, path, err)
	}
	a.logf("copying %d pages from %s", info.PageCount, path)

	imp := gofpdi.NewImporter()
	for page := 1; page <= info.PageCount; page++ {
		id, err := importPage(a.pdf, imp, path, page)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMatterNotFound, err)
		}
		geom, ok := info.pageGeometry(page)
		if !ok {
			geom = a.geometry
		}
		a.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: geom.Width, Ht: geom.Height})
		imp.UseImportedTemplate(a.pdf, id, 0, 0, geom.Width, geom.Height)
	}
	return info.PageCount, nil
}
