// runextract runs the text-extraction arbitration against a single local
// file and prints what each backend produced. No database required.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shreyescodes/doc-parser-updated/internal/classify"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/fields"
	"github.com/shreyescodes/doc-parser-updated/internal/textsource"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	converter := textsource.NewPDFConverter(logger)
	recognizer := textsource.NewRecognizer(textsource.RecognizerConfig{
		Pdftoppm:       cfg.Extract.Pdftoppm,
		Tesseract:      cfg.Extract.Tesseract,
		ImageConverter: cfg.Extract.ImageConverter,
		TesseractLang:  cfg.Extract.TesseractLang,
		TessdataDir:    cfg.Extract.TessdataDir,
		DPI:            cfg.Extract.DPI,
		MaxPages:       cfg.Extract.MaxPages,
	}, logger)
	source := textsource.NewAdapter(converter, recognizer, logger)

	start := time.Now()
	res, err := source.Extract(ctx, path)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	classifier := classify.NewClassifier()
	category := classifier.Classify(res.NormalizedText)
	callScore, distScore := classifier.Scores(res.NormalizedText)

	engine := fields.NewEngine(logger)
	info := engine.ExtractFundInfo(res.NormalizedText)

	logger.Info("extraction OK",
		"path", path,
		"structural_ok", res.StructuralOK,
		"structural_chars", len(res.StructuralText),
		"ocr_chars", len(res.OCRText),
		"pages", res.Pages,
		"category", category,
		"capital_call_score", callScore,
		"distribution_score", distScore,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if info.FundName != nil {
		logger.Info("fund identified", "fund_name", *info.FundName)
	}

	fmt.Println(res.NormalizedText)
}
