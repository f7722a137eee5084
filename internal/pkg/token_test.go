package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAcceptKey(t *testing.T) {
	// the sample handshake from RFC 6455 section 1.2
	accept := GenerateAcceptKey("dGhlIHNhbXBsZSBub25jZQ==")

	assert.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", accept)
}

func TestGenerateNewSessionID(t *testing.T) {
	first := GenerateNewSessionID()
	second := GenerateNewSessionID()

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
}

func TestGenerateGameID(t *testing.T) {
	first := GenerateGameID()
	second := GenerateGameID()

	assert.Len(t, first, 8)
	assert.NotEqual(t, first, second)
}
