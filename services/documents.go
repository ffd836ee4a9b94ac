package services

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/luisfelipe-wekan/knowledge-extractor/models"
)

// ListPDFFiles scans dir (non-recursively) for .pdf files and returns their
// names and sizes. A missing or empty folder yields an empty slice, not an
// error.
func ListPDFFiles(dir string) ([]models.FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.FileInfo{}, nil
		}
		return nil, fmt.Errorf("read documents folder: %w", err)
	}

	files := make([]models.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, models.FileInfo{Name: entry.Name(), Size: info.Size()})
	}
	return files, nil
}

// ExtractTextFromPDF extracts plain text from one PDF file. Pages that fail
// to decode are skipped.
func ExtractTextFromPDF(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if textBuilder.Len() > 0 {
			textBuilder.WriteString("\n\n")
		}
		textBuilder.WriteString(pageText)
	}
	return textBuilder.String(), nil
}

// ScanAllPDFs extracts and combines the text of every PDF in dir. A file
// that fails to parse is logged and skipped; the scan keeps going with the
// remaining files. When nothing usable was extracted the error is
// ErrNoDocuments.
func ScanAllPDFs(dir string) (string, error) {
	files, err := ListPDFFiles(dir)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, file := range files {
		text, err := ExtractTextFromPDF(filepath.Join(dir, file.Name))
		if err != nil {
			log.Printf("skipping %s: %v", file.Name, err)
			continue
		}
		text = PreCleanText(text)
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return "", ErrNoDocuments
	}
	return strings.Join(parts, "\n\n"), nil
}
