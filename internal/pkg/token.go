package pkg

import (
	"crypto/rand"
	"crypto/sha1" //nolint: gosec // mandated by RFC 6455
	"encoding/base64"
	"encoding/hex"
)

// websocketGUID is the fixed GUID from RFC 6455 section 1.3.
const websocketGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

// GenerateNewSessionID returns a random 128-bit hex identifier.
func GenerateNewSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}

	return hex.EncodeToString(buf)
}

// GenerateGameID returns a short shareable game identifier.
func GenerateGameID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}

	return hex.EncodeToString(buf)
}

// GenerateAcceptKey computes the Sec-WebSocket-Accept value for a handshake.
func GenerateAcceptKey(key string) string {
	hash := sha1.Sum([]byte(key + websocketGUID)) //nolint: gosec // mandated by RFC 6455

	return base64.StdEncoding.EncodeToString(hash[:])
}
