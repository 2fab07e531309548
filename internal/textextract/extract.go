// Package textextract turns resume documents into normalized plain text.
package textextract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/muhammadolammi/hirematch/internal/model"
)

var extensions = map[string]string{
	".pdf":  model.FormatPDF,
	".docx": model.FormatDOCX,
	".txt":  model.FormatTXT,
	".text": model.FormatTXT,
	".html": model.FormatHTML,
	".htm":  model.FormatHTML,
}

// FormatFromName maps a file name's extension onto a document format.
func FormatFromName(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	format, ok := extensions[ext]
	if !ok {
		return "", &UnsupportedFormatError{Ext: ext}
	}
	return format, nil
}

// Document reads a file from disk into a RawDocument.
func Document(path string) (model.RawDocument, error) {
	format, err := FormatFromName(path)
	if err != nil {
		return model.RawDocument{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RawDocument{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return model.RawDocument{Name: filepath.Base(path), Format: format, Data: data}, nil
}

// ExtractFile is Document followed by Extract.
func ExtractFile(path string) (string, error) {
	doc, err := Document(path)
	if err != nil {
		return "", err
	}
	return Extract(doc)
}

// Extract dispatches on the document format and returns the cleaned text.
// An empty Format is derived from the document name.
func Extract(doc model.RawDocument) (string, error) {
	format := doc.Format
	if format == "" {
		f, err := FormatFromName(doc.Name)
		if err != nil {
			return "", err
		}
		format = f
	}

	var (
		raw string
		err error
	)
	switch format {
	case model.FormatPDF:
		raw, err = pdfText(doc.Data)
	case model.FormatDOCX:
		raw, err = docxText(doc.Data)
	case model.FormatTXT:
		if !utf8.Valid(doc.Data) {
			return "", fmt.Errorf("%s: %w", doc.Name, ErrEmptyContent)
		}
		raw = string(doc.Data)
	case model.FormatHTML:
		raw, err = htmlText(doc.Data)
	default:
		return "", &UnsupportedFormatError{Ext: "." + format}
	}
	if err != nil {
		return "", err
	}

	text := Clean(raw)
	if text == "" {
		return "", fmt.Errorf("%s: %w", doc.Name, ErrEmptyContent)
	}
	return text, nil
}

// FormatFromMIME maps the content types stored with uploaded resumes onto
// document formats.
func FormatFromMIME(mime string) (string, error) {
	switch strings.TrimSpace(strings.ToLower(strings.Split(mime, ";")[0])) {
	case "application/pdf":
		return model.FormatPDF, nil
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return model.FormatDOCX, nil
	case "text/plain":
		return model.FormatTXT, nil
	case "text/html":
		return model.FormatHTML, nil
	}
	return "", &UnsupportedFormatError{Ext: mime}
}
