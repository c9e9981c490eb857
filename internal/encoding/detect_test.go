package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanmehta-dev/spendbook/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Date,Description,Amount\n01-02-2024,Café Crème,₹250\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_UTF8BOMStripped(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := "Date,Amount\n"

	assert.Equal(t, content, decode(t, append(bom, content...)))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "Date\n" as UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'D', 0, 'a', 0, 't', 0, 'e', 0, '\n', 0}
	assert.Equal(t, "Date\n", decode(t, input))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "Crème" in Windows-1252: è = 0xE8.
	input := []byte{'C', 'r', 0xE8, 'm', 'e', '\n'}
	assert.Equal(t, "Crème\n", decode(t, input))
}
