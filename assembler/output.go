package assembler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// writeOutput finalizes the document: it creates the destination directory
// if needed, writes the PDF to a uniquely named temp file and renames it
// onto the output path, so an interrupted run never leaves a partial file
// at the destination.
func (a *Assembler) writeOutput() error {
	if a.pdf.Err() {
		return fmt.Errorf("%w: %v", ErrOutputWrite, a.pdf.Error())
	}

	dir := filepath.Dir(a.outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrOutputWrite, dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s-%s.tmp", filepath.Base(a.outputPath), uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrOutputWrite, tmp, err)
	}
	if err := a.pdf.Output(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := os.Rename(tmp, a.outputPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	a.logf("wrote %s (%d pages)", a.outputPath, a.pdf.PageCount())
	return nil
}
