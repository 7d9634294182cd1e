// Package textsource produces normalized text for a stored document from two
// independent backends: a structural PDF converter and an OCR fallback on
// rasterized pages. Either backend may be unavailable; the adapter degrades
// to whatever text it can get instead of failing the attempt.
package textsource

import (
	"context"
	"time"
)

// Source is the pipeline-facing contract: file path in, extraction attempt out.
type Source interface {
	Extract(ctx context.Context, path string) (Result, error)
}

// Result is one extraction attempt. Both texts are retained for audit even
// when only one feeds the classifier.
type Result struct {
	// NormalizedText favors the structural conversion; falls back to OCR
	// text when the conversion produced nothing.
	NormalizedText string
	StructuralText string
	StructuredTree map[string]any
	StructuralOK   bool
	// StructuralError carries the captured backend error when StructuralOK
	// is false. Informational only.
	StructuralError string
	OCRText         string
	Pages           int
	Duration        time.Duration
	Warnings        []string
}

// Conversion is the structural converter's output: rendered text plus an
// opaque nested content tree.
type Conversion struct {
	Text string
	Tree map[string]any
}

// StructuralConverter is the first backend: layout-aware conversion to
// structured text.
type StructuralConverter interface {
	Convert(ctx context.Context, path string) (Conversion, error)
}
