package textsource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner fakes the external binaries. For pdftoppm it materializes page
// images at the requested prefix; for tesseract it returns canned text.
type stubRunner struct {
	pages       int
	ocrText     string
	failPdftoppm bool
	failTesseract bool
	calls       []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	switch {
	case strings.Contains(name, "pdftoppm"):
		if s.failPdftoppm {
			return nil, []byte("pdftoppm: boom"), errors.New("exit 1")
		}
		prefix := args[len(args)-1]
		for i := 1; i <= s.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case strings.Contains(name, "tesseract"):
		if s.failTesseract {
			return nil, []byte("tesseract: boom"), errors.New("exit 1")
		}
		return []byte(s.ocrText), nil, nil
	case strings.Contains(name, "magick"):
		// out path is the last argument
		return nil, nil, os.WriteFile(args[len(args)-1], []byte("png"), 0o644)
	default:
		return nil, []byte("unknown binary"), errors.New("exit 127")
	}
}

type stubConverter struct {
	text string
	tree map[string]any
	err  error
}

func (s *stubConverter) Convert(context.Context, string) (Conversion, error) {
	if s.err != nil {
		return Conversion{}, s.err
	}
	return Conversion{Text: s.text, Tree: s.tree}, nil
}

func tempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "letter.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	return path
}

func newTestRecognizer(r Runner) *Recognizer {
	rec := NewRecognizer(RecognizerConfig{}, nil)
	rec.runner = r
	return rec
}

func TestRecognizePDFJoinsPagesWithMarkers(t *testing.T) {
	runner := &stubRunner{pages: 2, ocrText: "CAPITAL CALL NOTICE"}
	rec := newTestRecognizer(runner)

	text, pages, warns := rec.Recognize(context.Background(), tempPDF(t))

	assert.Equal(t, 2, pages)
	assert.Empty(t, warns)
	assert.Contains(t, text, "--- Page 1 ---")
	assert.Contains(t, text, "--- Page 2 ---")
	assert.Contains(t, text, "CAPITAL CALL NOTICE")
}

func TestRecognizePDFMaxPagesCap(t *testing.T) {
	runner := &stubRunner{pages: 5, ocrText: "x"}
	rec := NewRecognizer(RecognizerConfig{MaxPages: 2}, nil)
	rec.runner = runner

	_, pages, _ := rec.Recognize(context.Background(), tempPDF(t))
	assert.Equal(t, 2, pages)
}

func TestRecognizePDFDegradesToWarnings(t *testing.T) {
	runner := &stubRunner{failPdftoppm: true}
	rec := newTestRecognizer(runner)

	text, pages, warns := rec.Recognize(context.Background(), tempPDF(t))

	assert.Empty(t, text)
	assert.Zero(t, pages)
	assert.NotEmpty(t, warns)
}

func TestRecognizeImageNormalizesFirst(t *testing.T) {
	runner := &stubRunner{ocrText: "DISTRIBUTION NOTICE"}
	rec := newTestRecognizer(runner)

	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

	text, pages, _ := rec.Recognize(context.Background(), path)

	assert.Equal(t, 1, pages)
	assert.Equal(t, "DISTRIBUTION NOTICE", text)
	assert.Contains(t, runner.calls, "magick")
}

func TestAdapterPrefersStructuralText(t *testing.T) {
	conv := &stubConverter{text: "structural text", tree: map[string]any{"page_count": 1}}
	rec := newTestRecognizer(&stubRunner{pages: 1, ocrText: "ocr text"})
	a := NewAdapter(conv, rec, nil)

	res, err := a.Extract(context.Background(), tempPDF(t))
	require.NoError(t, err)

	assert.True(t, res.StructuralOK)
	assert.Equal(t, "structural text", res.NormalizedText)
	assert.Contains(t, res.OCRText, "ocr text") // both backends always run
	assert.NotNil(t, res.StructuredTree)
}

func TestAdapterFallsBackToOCR(t *testing.T) {
	conv := &stubConverter{err: errors.New("encrypted pdf")}
	rec := newTestRecognizer(&stubRunner{pages: 1, ocrText: "ocr only"})
	a := NewAdapter(conv, rec, nil)

	res, err := a.Extract(context.Background(), tempPDF(t))
	require.NoError(t, err)

	assert.False(t, res.StructuralOK)
	assert.Contains(t, res.StructuralError, "encrypted")
	assert.Contains(t, res.NormalizedText, "ocr only")
}

func TestAdapterRejectsUnknownExtension(t *testing.T) {
	rec := newTestRecognizer(&stubRunner{})
	a := NewAdapter(&stubConverter{}, rec, nil)

	_, err := a.Extract(context.Background(), "letter.docx")
	assert.Error(t, err)
}

func TestAdapterBothBackendsEmpty(t *testing.T) {
	conv := &stubConverter{err: errors.New("broken xref")}
	rec := newTestRecognizer(&stubRunner{failPdftoppm: true})
	a := NewAdapter(conv, rec, nil)

	res, err := a.Extract(context.Background(), tempPDF(t))
	require.NoError(t, err) // degradation is recorded, not raised

	assert.Empty(t, res.NormalizedText)
	assert.False(t, res.StructuralOK)
	assert.NotEmpty(t, res.Warnings)
}
