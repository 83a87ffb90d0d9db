package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPDFOptions(t *testing.T) {
	opts := DefaultPDFOptions()
	assert.Equal(t, "portrait", opts.PageOrientation)
	assert.Equal(t, "A4", opts.PageSize)
	assert.Equal(t, 36, opts.MarginTop)
	assert.Equal(t, 36, opts.MarginRight)
	assert.Positive(t, opts.RenderWait)
}

func TestPaperSize(t *testing.T) {
	tests := []struct {
		size, orientation string
		w, h              float64
	}{
		{"A4", "portrait", 8.27, 11.69},
		{"letter", "portrait", 8.5, 11.0},
		{"legal", "landscape", 14.0, 8.5},
		{"unknown", "portrait", 8.27, 11.69},
	}
	for _, tt := range tests {
		w, h := PDFOptions{PageSize: tt.size, PageOrientation: tt.orientation}.paperSize()
		assert.Equal(t, tt.w, w, tt.size)
		assert.Equal(t, tt.h, h, tt.size)
	}
}

func TestGeneratePDFSmoke(t *testing.T) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("Skipping PDF generation test: CHROME_PATH not set")
	}

	opts := DefaultPDFOptions()
	opts.ChromePath = chromePath
	opts.RenderWait = 100 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pdf, err := GeneratePDF(ctx, "<!DOCTYPE html><html><body><h1>CFA</h1></body></html>", opts)
	if err != nil {
		t.Errorf("GeneratePDF failed: %v", err)
		return
	}

	assert.True(t, len(pdf) > 5)
	assert.Equal(t, "%PDF-", string(pdf[:5]))
}
