// Package entrycode generates and formats the two credentials handed to a
// participant: the human-typable entry code (XXX-XXX-XXX-XXX) and the opaque
// QR token embedded in their scannable code.
package entrycode

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

const (
	// CodeLength is the number of significant characters in an entry code,
	// excluding separators.
	CodeLength = 12

	groupSize = 3
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodePattern matches a fully formatted entry code.
var CodePattern = regexp.MustCompile(`^[A-Z0-9]{3}-[A-Z0-9]{3}-[A-Z0-9]{3}-[A-Z0-9]{3}$`)

var qrTokenPattern = regexp.MustCompile(`^[a-f0-9]{32}$`)

// Normalize uppercases the input, strips everything outside [A-Z0-9] and
// truncates to CodeLength significant characters.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == CodeLength {
				break
			}
		}
	}

	return b.String()
}

// Format normalizes the input and groups it in runs of three separated by
// hyphens, e.g. "abc123def456" -> "ABC-123-DEF-456".
func Format(raw string) string {
	normalized := Normalize(raw)

	var b strings.Builder
	for i, r := range normalized {
		if i > 0 && i%groupSize == 0 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Generate produces a random, fully formatted entry code.
func Generate() (string, error) {
	buf := make([]byte, CodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("rand.Int -> %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}

	return Format(string(buf)), nil
}

// QRToken derives the check-in token for a participant: the first 32 hex
// characters of sha256("<eventID>:<entryCode>:<unix-millis>"). Deterministic
// for identical inputs; uniqueness is enforced by the storage layer.
func QRToken(eventID uint, entryCode string, ts time.Time) string {
	data := fmt.Sprintf("%d:%s:%d", eventID, entryCode, ts.UnixMilli())
	sum := sha256.Sum256([]byte(data))

	return hex.EncodeToString(sum[:])[:32]
}

// ValidQRToken reports whether s looks like a token produced by QRToken.
func ValidQRToken(s string) bool {
	return qrTokenPattern.MatchString(s)
}
