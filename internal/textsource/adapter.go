package textsource

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shreyescodes/doc-parser-updated/constants"
)

// Adapter arbitrates between the structural converter and the OCR fallback.
// Each backend is attempted independently; a backend failure is recorded on
// the result, not raised.
type Adapter struct {
	converter  StructuralConverter
	recognizer *Recognizer
	logger     *slog.Logger
}

func NewAdapter(converter StructuralConverter, recognizer *Recognizer, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{converter: converter, recognizer: recognizer, logger: logger}
}

// Extract runs both backends and merges their outputs into one attempt
// result. It returns an error only for inputs neither backend understands.
func (a *Adapter) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) == "" {
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	var res Result

	if a.converter != nil {
		conv, err := a.converter.Convert(ctx, path)
		if err != nil {
			// degraded, not fatal; OCR may still produce text
			res.StructuralOK = false
			res.StructuralError = err.Error()
			a.logger.Warn("structural conversion failed", "path", path, "error", err)
		} else {
			res.StructuralOK = true
			res.StructuralText = conv.Text
			res.StructuredTree = conv.Tree
		}
	} else {
		res.StructuralError = "structural converter not configured"
		a.logger.Warn("structural converter not configured, relying on ocr", "path", path)
	}

	ocrText, pages, warns := a.recognizer.Recognize(ctx, path)
	res.OCRText = ocrText
	res.Pages = pages
	res.Warnings = append(res.Warnings, warns...)

	res.NormalizedText = res.StructuralText
	if res.NormalizedText == "" {
		res.NormalizedText = res.OCRText
	}
	res.Duration = time.Since(start)

	a.logger.Info("text extraction attempt finished",
		"path", path,
		"structural_ok", res.StructuralOK,
		"structural_chars", len(res.StructuralText),
		"ocr_chars", len(res.OCRText),
		"pages", res.Pages,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
