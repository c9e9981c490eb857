package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize is how many bytes are peeked for BOM and charset detection.
const sniffSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r so its content reads as UTF-8 regardless of the
// original charset. Bank exports arrive in anything from UTF-16 with BOM to
// bare Windows-1252, so detection runs in order of confidence: BOM, UTF-8
// validity, chardet heuristics, then a Windows-1252 fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(head, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	case bytes.HasPrefix(head, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if cm := detectCharmap(head); cm != nil {
		return transform.NewReader(br, cm.NewDecoder()), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// detectCharmap maps a chardet guess to a decoder we can apply. Returns nil
// when the guess is unusable (caller falls back to Windows-1252).
func detectCharmap(head []byte) *charmap.Charmap {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil
	}

	switch result.Charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252
	case "ISO-8859-9":
		return charmap.ISO8859_9
	case "ISO-8859-15":
		return charmap.ISO8859_15
	default:
		return nil
	}
}
