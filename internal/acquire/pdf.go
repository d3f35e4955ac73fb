package acquire

import (
	"os"

	"github.com/ledongthuc/pdf"
)

// PDFReader opens PDF files through the embedded text layer.
type PDFReader struct{}

func (PDFReader) Open(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &pdfDocument{f: f, r: r}, nil
}

type pdfDocument struct {
	f *os.File
	r *pdf.Reader
}

func (d *pdfDocument) PageCount() int {
	return d.r.NumPage()
}

func (d *pdfDocument) PageText(index int) (string, error) {
	page := d.r.Page(index + 1) // pages are 1-based
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func (d *pdfDocument) Close() error {
	return d.f.Close()
}
