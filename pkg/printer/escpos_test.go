package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_StartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte{ESC, '@'}))
}

func TestDocument_KeyValueAlignsRight(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Total", "¥1,000")

	out := doc.Bytes()[2:] // skip init sequence
	line, _, found := bytes.Cut(out, []byte{LF})
	require.True(t, found)

	assert.True(t, bytes.HasPrefix(line, []byte("Total")))
	assert.True(t, bytes.HasSuffix(line, []byte("¥1,000")))
}

func TestDocument_ItemLine(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine(2, "Onigiri", "¥300")

	out := doc.Bytes()[2:]
	line, _, found := bytes.Cut(out, []byte{LF})
	require.True(t, found)
	assert.True(t, bytes.HasPrefix(line, []byte("2x Onigiri")))
	assert.True(t, bytes.HasSuffix(line, []byte("¥300")))
}

func TestDocument_PartialCut(t *testing.T) {
	doc := NewDocument(32)
	doc.PartialCut()
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte{GS, 'V', 0x01}))
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	require.NoError(t, err)
	assert.False(t, p.IsConnected())
	assert.NoError(t, p.Print([]byte("anything")))

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)
}
