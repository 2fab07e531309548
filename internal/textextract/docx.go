package textextract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return paragraphText(doc.Editable().GetContent())
}

// paragraphText reduces WordprocessingML body XML to its paragraph text.
// Runs are concatenated, each paragraph ends a line and table content is
// skipped.
func paragraphText(body string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(body))
	var (
		sb        strings.Builder
		inText    bool
		tableDeep int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read docx body: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDeep++
			case "t":
				inText = true
			case "tab":
				if tableDeep == 0 {
					sb.WriteByte('\t')
				}
			case "br":
				if tableDeep == 0 {
					sb.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDeep--
			case "t":
				inText = false
			case "p":
				if tableDeep == 0 {
					sb.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inText && tableDeep == 0 {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
