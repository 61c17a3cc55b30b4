package extractor

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/Mr2-hex/quivo-backend/errs"
	"github.com/Mr2-hex/quivo-backend/models"
)

// Extractor converts a materialized resume file into a section map.
type Extractor struct{}

// New creates a new resume extractor
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path, pulls its plain text and splits it
// into canonical sections. The actual content decides the format: a
// declared media type that passed the upload filter can still disagree
// with the bytes on disk, and that mismatch is a parse failure, not a
// crash.
func (e *Extractor) Extract(path string) (*models.ParsedResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindParsing, "failed to read uploaded document", err)
	}

	text, err := extractText(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, err
	}

	return Sectionize(text), nil
}

func extractText(data []byte, ext string) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return extractPDF(data)
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return extractDOCX(data)
	case ext == ".doc":
		// Legacy Word has no usable Go parser; scrub the binary
		// container down to its readable text.
		return extractLegacyDoc(data)
	default:
		return "", errs.Newf(errs.KindParsing, "document content does not match a supported format (%s)", ext)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errs.Wrap(errs.KindParsing, "failed to read pdf", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", errs.Wrap(errs.KindParsing, "failed to extract pdf text", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", errs.Wrap(errs.KindParsing, "failed to extract pdf text", err)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errs.Wrap(errs.KindParsing, "failed to parse docx", err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML drops the WordprocessingML tags from the raw document
// body, inserting newlines at paragraph boundaries.
func stripDocxXML(raw string) string {
	raw = strings.ReplaceAll(raw, "</w:p>", "\n")
	var b strings.Builder
	inTag := false
	for _, r := range raw {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// extractLegacyDoc keeps the printable runs of a binary .doc file. The
// result is noisy but good enough for section detection and prompting.
func extractLegacyDoc(data []byte) (string, error) {
	var b strings.Builder
	for _, c := range data {
		if c >= 32 && c <= 126 || c == '\n' || c == '\r' || c == '\t' {
			b.WriteByte(c)
		}
	}
	text := strings.TrimSpace(b.String())
	if len(text) < 20 {
		return "", errs.New(errs.KindParsing, "no readable text found in document")
	}
	return text, nil
}
