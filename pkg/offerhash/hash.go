// Package offerhash computes the stable content hash used to correlate
// scam reports across duplicate submissions of the same offer letter.
package offerhash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Normalize collapses runs of whitespace to single spaces, trims, and
// lower-cases the text. Two copies of the same letter with different
// spacing or casing normalize to the same string.
func Normalize(rawText string) string {
	return strings.ToLower(strings.Join(strings.Fields(rawText), " "))
}

// OfferHash returns the hex-encoded SHA-256 of the normalized offer text.
// The normalization scheme is a compatibility contract with stored report
// keys and must not change.
func OfferHash(rawText string) string {
	return SHA256Hex(Normalize(rawText))
}

// SHA256Hex returns the hex-encoded SHA-256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}
