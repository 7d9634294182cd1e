package textsource

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/shreyescodes/doc-parser-updated/constants"
)

// PDFConverter renders a PDF's embedded text layer page by page and builds a
// nested content tree from the document structure. Image inputs have no text
// layer and are rejected; the caller falls back to OCR.
type PDFConverter struct {
	logger *slog.Logger
}

func NewPDFConverter(logger *slog.Logger) *PDFConverter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFConverter{logger: logger}
}

func (c *PDFConverter) Convert(ctx context.Context, path string) (Conversion, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) != constants.PDF {
		return Conversion{}, fmt.Errorf("structural conversion supports PDF only, got %q", ext)
	}

	// Validate the file before parsing; a truncated or encrypted PDF should
	// surface as a clean conversion error, not a panic deep in the parser.
	if err := api.ValidateFile(path, nil); err != nil {
		return Conversion{}, fmt.Errorf("pdf validation: %w", err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return Conversion{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			c.logger.Warn("failed to close pdf", "path", path, "error", cerr)
		}
	}()

	total := reader.NumPage()
	var b strings.Builder
	pages := make([]map[string]any, 0, total)

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return Conversion{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, map[string]any{"number": i, "empty": true})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unparseable page degrades that page only.
			c.logger.Warn("page text extraction failed", "path", path, "page", i, "error", err)
			pages = append(pages, map[string]any{"number": i, "error": err.Error()})
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
		pages = append(pages, map[string]any{
			"number": i,
			"chars":  len(text),
		})
	}

	tree := map[string]any{
		"source":     filepath.Base(path),
		"format":     "pdf",
		"page_count": total,
		"pages":      pages,
	}

	c.logger.Debug("structural conversion ok", "path", path, "pages", total, "chars", b.Len())
	return Conversion{Text: b.String(), Tree: tree}, nil
}
