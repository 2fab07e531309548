package textextract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/hirematch/internal/model"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane</w:t></w:r><w:r><w:t xml:space="preserve"> Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>jane@example.com</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>table cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p><w:r><w:t>Go, Python</w:t></w:r></w:p>
</w:body>
</w:document>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":            body,
		"word/_rels/document.xml.rels": relsXML,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF writes a one page PDF with a Helvetica font resource around the
// given content stream.
func buildPDF(t *testing.T, content string) []byte {
	t.Helper()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractPDFLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "one text object moved with Td",
			content: "BT /F1 12 Tf 72 720 Td (John Smith) Tj 0 -14 Td (johnsmith@email.com) Tj " +
				"0 -14 Td (555-123-4567) Tj 0 -14 Td (Python, Django, AWS) Tj ET",
		},
		{
			name: "text object per line",
			content: "BT /F1 12 Tf 72 720 Td (John Smith) Tj ET BT /F1 12 Tf 72 706 Td (johnsmith@email.com) Tj ET " +
				"BT /F1 12 Tf 72 692 Td (555-123-4567) Tj ET BT /F1 12 Tf 72 678 Td (Python, Django, AWS) Tj ET",
		},
		{
			name:    "leading with T*",
			content: "BT /F1 12 Tf 14 TL 72 720 Td (John Smith) Tj T* (johnsmith@email.com) Tj T* (555-123-4567) Tj T* (Python, Django, AWS) Tj ET",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Extract(model.RawDocument{Name: "cv.pdf", Data: buildPDF(t, tt.content)})
			require.NoError(t, err)
			assert.Equal(t, "John Smith\njohnsmith@email.com\n555-123-4567\nPython, Django, AWS", text)
		})
	}
}

func TestExtractPDFWithoutTextLayer(t *testing.T) {
	doc := model.RawDocument{Name: "scan.pdf", Data: buildPDF(t, "q 0 0 m 200 200 l S 10 10 100 100 re f Q")}
	_, err := Extract(doc)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestExtractDocxParagraphs(t *testing.T) {
	text, err := Extract(model.RawDocument{Name: "cv.docx", Format: model.FormatDOCX, Data: buildDocx(t, documentXML)})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com\nGo, Python", text)
	assert.NotContains(t, text, "table cell")
}

func TestExtractPlainText(t *testing.T) {
	text, err := Extract(model.RawDocument{Name: "cv.txt", Data: []byte("Jane Doe  \r\n\r\n\r\nＰｙｔｈｏｎ developer\r\n")})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nPython developer", text)
}

func TestExtractHTML(t *testing.T) {
	page := `<html><head><style>p{color:red}</style></head><body>
<h1>Jane Doe</h1><p>jane@example.com</p><script>alert(1)</script><ul><li>Go</li><li>Docker</li></ul></body></html>`
	text, err := Extract(model.RawDocument{Name: "cv.html", Format: model.FormatHTML, Data: []byte(page)})
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "jane@example.com")
	assert.Contains(t, text, "Go\n")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name        string
		doc         model.RawDocument
		unsupported bool
		empty       bool
	}{
		{name: "unknown extension", doc: model.RawDocument{Name: "cv.rtf", Data: []byte("x")}, unsupported: true},
		{name: "no extension", doc: model.RawDocument{Name: "cv", Data: []byte("x")}, unsupported: true},
		{name: "whitespace only", doc: model.RawDocument{Name: "cv.txt", Data: []byte(" \n\t ")}, empty: true},
		{name: "binary text", doc: model.RawDocument{Name: "cv.txt", Data: []byte{0xff, 0xfe, 0x00}}, empty: true},
		{name: "empty docx body", doc: model.RawDocument{Name: "cv.docx", Data: buildDocx(t, `<w:document xmlns:w="x"><w:body></w:body></w:document>`)}, empty: true},
		{name: "corrupt pdf", doc: model.RawDocument{Name: "cv.pdf", Data: []byte("not a pdf")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.doc)
			require.Error(t, err)

			var unsupported *UnsupportedFormatError
			assert.Equal(t, tt.unsupported, errors.As(err, &unsupported))
			assert.Equal(t, tt.empty, errors.Is(err, ErrEmptyContent))
		})
	}
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.TXT")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\n"), 0o600))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text)

	_, err = ExtractFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestExtractIsRepeatable(t *testing.T) {
	doc := model.RawDocument{Name: "cv.docx", Data: buildDocx(t, documentXML)}
	first, err := Extract(doc)
	require.NoError(t, err)
	second, err := Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormatFromMIME(t *testing.T) {
	f, err := FormatFromMIME("application/pdf")
	require.NoError(t, err)
	assert.Equal(t, model.FormatPDF, f)

	f, err = FormatFromMIME("text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, model.FormatTXT, f)

	_, err = FormatFromMIME("image/png")
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "a\n\nb", Clean("\n\na \t\n\n\n\nb\x07\n\n"))
	assert.Equal(t, "fi", Clean("ﬁ"))
}
