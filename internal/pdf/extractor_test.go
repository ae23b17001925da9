package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_EmptyInput(t *testing.T) {
	e := NewExtractor()
	assert.Equal(t, "", e.Extract(nil))
	assert.Equal(t, "", e.Extract([]byte{}))
}

func TestExtract_GarbageInput(t *testing.T) {
	e := NewExtractor()
	// Not a PDF at all; extraction must degrade to an empty string instead
	// of returning an error or panicking.
	assert.Equal(t, "", e.Extract([]byte("this is just plain text, not a pdf")))
}

func TestExtract_TruncatedHeader(t *testing.T) {
	e := NewExtractor()
	assert.Equal(t, "", e.Extract([]byte("%PDF-1.4\nbroken")))
}
