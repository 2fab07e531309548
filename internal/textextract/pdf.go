package textextract

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText reads the text layer page by page.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		sb.WriteString(pageText(page))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// pageText prefers the plain text stream, which breaks lines at text
// objects and T*. Text placed inside one object with Td, TD or Tm only
// separates by position, so the positioned reading wins when it finds
// more lines.
func pageText(page pdf.Page) string {
	plain, err := page.GetPlainText(nil)
	positioned := positionedText(page)
	if err != nil || lineCount(positioned) > lineCount(plain) {
		return positioned
	}
	return plain
}

// positionedText starts a new line whenever the baseline moves by more
// than half the font size.
func positionedText(page pdf.Page) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	var (
		sb    strings.Builder
		lastY float64
		first = true
	)
	for _, t := range page.Content().Text {
		if t.S == "\n" {
			continue
		}
		tolerance := math.Max(t.FontSize/2, 1)
		if !first && math.Abs(t.Y-lastY) > tolerance {
			sb.WriteString("\n")
		}
		sb.WriteString(t.S)
		lastY = t.Y
		first = false
	}
	return sb.String()
}

func lineCount(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
