package assembler

import (
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// Assemble builds and writes the output document for the given image paths.
// Pages are appended strictly left to right: front matter first, then one
// template-shaped page per image (with an optional blank template page
// between consecutive images), then back matter.
func (a *Assembler) Assemble(imagePaths []string) error {
	tpl, err := probePDF(a.opts.TemplatePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, a.opts.TemplatePath, err)
	}
	geom, ok := tpl.pageGeometry(tpl.PageCount)
	if !ok {
		return fmt.Errorf("%w: %s: no media box on page %d", ErrTemplateNotFound, a.opts.TemplatePath, tpl.PageCount)
	}
	a.geometry = geom
	a.logf("template %s: %d pages, page size %.1fx%.1f pt", a.opts.TemplatePath, tpl.PageCount, geom.Width, geom.Height)

	a.pdf = gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: geom.Width, Ht: geom.Height},
	})
	a.pdf.SetMargins(0, 0, 0)
	a.pdf.SetAutoPageBreak(false, 0)

	a.tplImp = gofpdi.NewImporter()
	a.tplID, err = importPage(a.pdf, a.tplImp, a.opts.TemplatePath, tpl.PageCount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}

	a.offset, err = a.copyMatter(a.opts.FrontMatterPath)
	if err != nil {
		return err
	}

	for i, path := range imagePaths {
		a.appendTemplatePage()
		a.logf("placing %s on page %d", path, a.pageIndex(i))
		if err := a.place(&ImageEntry{Path: path}); err != nil {
			return err
		}
		// Separator pages go between image pages only; the final image is
		// never followed by one.
		if !a.opts.SkipSeparators && i < len(imagePaths)-1 {
			a.appendTemplatePage()
		}
	}

	if _, err := a.copyMatter(a.opts.BackMatterPath); err != nil {
		return err
	}

	return a.writeOutput()
}

// pageIndex returns the 1-based page number the i-th (0-based) image lands
// on: every earlier image consumed one image page plus, when separators are
// enabled, one blank page, all shifted by the front-matter offset.
func (a *Assembler) pageIndex(i int) int {
	idx := a.offset + i + 1
	if !a.opts.SkipSeparators {
		idx += i
	}
	return idx
}

// appendTemplatePage adds one page of template geometry and stamps the
// imported template page onto it full-size.
func (a *Assembler) appendTemplatePage() {
	a.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: a.geometry.Width, Ht: a.geometry.Height})
	a.tplImp.UseImportedTemplate(a.pdf, a.tplID, 0, 0, a.geometry.Width, a.geometry.Height)
}

func (a *Assembler) logf(format string, args ...interface{}) {
	if a.opts.Verbose {
		log.Printf(format, args...)
	}
}
