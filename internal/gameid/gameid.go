// Package gameid generates sortable, human-friendly game identifiers:
// UUIDv7 values rendered as 26 characters of Crockford base32. The
// alphabet drops the ambiguous i, l, o and u, and IDs created close
// together sort in creation order.
package gameid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lowercased.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies the random integers for deterministic ID
// generation. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generate returns a new time-ordered game ID.
func Generate() string {
	id := uuid.Must(uuid.NewV7())
	return encodeBase32([16]byte(id))
}

// GenerateWithRandSource returns a game ID drawn entirely from r, so a
// seeded source reproduces the same sequence of IDs. The version and
// variant bits are still set, but the timestamp field carries random
// bits instead of wall-clock time, which gives up time ordering.
func GenerateWithRandSource(r RandSource) string {
	var raw [16]byte
	for i := range raw {
		raw[i] = byte(r.IntN(256))
	}

	// Keep the leading base32 character in 0-7, as Validate requires.
	raw[0] &= 0x3f

	// Version 7, variant 10.
	raw[6] = (raw[6] & 0x0f) | 0x70
	raw[8] = (raw[8] & 0x3f) | 0x80

	return encodeBase32(raw)
}

// encodeBase32 encodes 128 bits as 26 base32 characters, MSB first.
// 26 characters hold 130 bits, so the last character carries two bits
// of zero padding.
func encodeBase32(data [16]byte) string {
	var out [26]byte
	for i := range out {
		off := i * 5
		idx, shift := off/8, off%8

		var v byte
		if shift <= 3 {
			v = (data[idx] >> (3 - shift)) & 0x1f
		} else {
			v = (data[idx] << (shift - 3)) & 0x1f
			if idx+1 < len(data) {
				v |= data[idx+1] >> (11 - shift)
			}
		}
		out[i] = alphabet[v]
	}
	return string(out[:])
}

// Validate checks that id is a well-formed game ID: 26 lowercase
// base32 characters with a leading character in 0-7.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("game ID must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
