// id.go — Content-derived identifier codec.
package message

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// IDLength is the hex-character width of derived identifiers. A 32-bit
// prefix keeps share links short; the resulting ~1/2^32 collision odds
// are an accepted risk for this non-adversarial use, not a correctness
// guarantee.
const IDLength = 8

// DeriveID computes the identifier for a record: the first 8 hex
// characters of sha256 over the normalized fields joined with "|". The
// delimiter prevents ambiguous concatenations from colliding. Pure;
// an empty message is valid input.
func DeriveID(rec Record) string {
	rec = Normalize(rec)

	content := strings.Join([]string{
		rec.Message,
		rec.ImageType,
		rec.SubType,
		strconv.FormatBool(rec.ZoomMode),
	}, "|")

	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:IDLength]
}
