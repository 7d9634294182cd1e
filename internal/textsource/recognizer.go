package textsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shreyescodes/doc-parser-updated/constants"
)

// RecognizerConfig configures the OCR fallback path.
type RecognizerConfig struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	// ImageConverter normalizes images to PNG/RGB before recognition:
	// "magick" | "heif-convert" | "sips". Empty -> "magick".
	ImageConverter string

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for PDFs, default 300
	MaxPages      int // 0 = no limit
}

// Recognizer extracts text from rasterized pages via tesseract. Any backend
// failure degrades to an empty string with warnings; the recognizer never
// fails the attempt.
type Recognizer struct {
	cfg    RecognizerConfig
	runner Runner
	logger *slog.Logger
}

func NewRecognizer(cfg RecognizerConfig, logger *slog.Logger) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.ImageConverter == "" {
		cfg.ImageConverter = "magick"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Recognizer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize picks a strategy based on file extension. Multi-page PDFs are
// split into page images and recognized page by page, joined with a
// "--- Page N ---" boundary marker.
func (r *Recognizer) Recognize(ctx context.Context, path string) (text string, pages int, warnings []string) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		return r.recognizePDF(ctx, path)
	case constants.IMAGE:
		return r.recognizeImage(ctx, path)
	default:
		return "", 0, []string{fmt.Sprintf("unsupported extension for ocr: %q", ext)}
	}
}

func (r *Recognizer) recognizePDF(ctx context.Context, path string) (string, int, []string) {
	tmpDir, err := os.MkdirTemp("", "dp-pp-*")
	if err != nil {
		return "", 0, []string{err.Error()}
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			r.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", r.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if r.cfg.MaxPages > 0 && len(matches) > r.cfg.MaxPages {
		matches = matches[:r.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}
	}

	var parts []string
	var warns []string
	for i, img := range matches {
		txt, w, err := r.tesseractOCR(ctx, img)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", i+1, txt))
	}
	return strings.Join(parts, "\n\n"), len(matches), warns
}

func (r *Recognizer) recognizeImage(ctx context.Context, path string) (string, int, []string) {
	normalized, cleanup, warns, err := r.normalizeImage(ctx, path)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		// recognize the original as-is; tesseract handles most modes
		warns = append(warns, err.Error())
		normalized = path
	}

	txt, w, err := r.tesseractOCR(ctx, normalized)
	warns = append(warns, w...)
	if err != nil {
		warns = append(warns, err.Error())
		return "", 1, warns
	}
	return txt, 1, warns
}

// normalizeImage converts the input to a canonical PNG so tesseract sees one
// color mode regardless of source format. Returns the path to recognize plus
// a cleanup func for the temp artifact.
func (r *Recognizer) normalizeImage(ctx context.Context, in string) (string, func(), []string, error) {
	tmpDir, err := os.MkdirTemp("", "dp-img-*")
	if err != nil {
		return "", nil, nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }
	out := filepath.Join(tmpDir, "page.png")

	switch r.cfg.ImageConverter {
	case "magick":
		if _, errb, err2 := r.runner.Run(ctx, "magick", in, "-colorspace", "sRGB", out); err2 != nil {
			return "", cleanup, []string{string(errb)}, fmt.Errorf("magick convert failed: %w", err2)
		}
	case "heif-convert":
		if _, errb, err2 := r.runner.Run(ctx, "heif-convert", in, out); err2 != nil {
			return "", cleanup, []string{string(errb)}, fmt.Errorf("heif-convert failed: %w", err2)
		}
	case "sips":
		if _, errb, err2 := r.runner.Run(ctx, "sips", "-s", "format", "png", in, "--out", out); err2 != nil {
			return "", cleanup, []string{string(errb)}, fmt.Errorf("sips convert failed: %w", err2)
		}
	default:
		return "", cleanup, nil, fmt.Errorf("unknown image converter %q", r.cfg.ImageConverter)
	}

	if _, statErr := os.Stat(out); statErr != nil {
		return "", cleanup, nil, fmt.Errorf("image conversion produced no output: %v", statErr)
	}
	return out, cleanup, nil, nil
}

func (r *Recognizer) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", r.cfg.TesseractLang}
	if r.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", r.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := r.runner.Run(ctx, r.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
