// Package cuid2 generates short, prefixed, time-sortable identifiers
// ("imp_1rK5iqX0aB...") for import runs and archived uploads.
package cuid2

import (
	crypto_rand "crypto/rand"
	"fmt"
	"strings"
	"time"
)

// Base62 alphabet: 0-9, A-Z, a-z
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	// PrefixImport marks one validation run of an uploaded schedule
	PrefixImport = "imp"

	timestampLength     = 6
	defaultRandomLength = 18
)

// EncodeTimestamp encodes Unix seconds as a fixed-width base62 string that
// sorts lexicographically in time order
func EncodeTimestamp(seconds int64) string {
	n := seconds
	result := make([]byte, timestampLength)
	for i := timestampLength - 1; i >= 0; i-- {
		result[i] = base62Alphabet[n%62]
		n /= 62
	}
	return string(result)
}

// randomString draws length base62 characters from crypto/rand. Six bits are
// taken per character and values >= 62 are rejected to keep the draw uniform.
func randomString(length int) (string, error) {
	buf := make([]byte, (length*6)/8+4)
	if _, err := crypto_rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	var out strings.Builder
	out.Grow(length)
	bits := uint64(0)
	nbits := uint(0)
	idx := 0

	for out.Len() < length {
		for nbits < 6 && idx < len(buf) {
			bits = (bits << 8) | uint64(buf[idx])
			nbits += 8
			idx++
		}
		if nbits < 6 {
			if _, err := crypto_rand.Read(buf); err != nil {
				return "", fmt.Errorf("read random bytes: %w", err)
			}
			idx, bits, nbits = 0, 0, 0
			continue
		}

		v := (bits >> (nbits - 6)) & 0x3f
		nbits -= 6
		if v < 62 {
			out.WriteByte(base62Alphabet[v])
		}
	}
	return out.String(), nil
}

// New returns prefix_<timestamp><random>, 25 characters after the prefix
func New(prefix string) (string, error) {
	return newAt(prefix, time.Now())
}

func newAt(prefix string, at time.Time) (string, error) {
	random, err := randomString(defaultRandomLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + EncodeTimestamp(at.Unix()) + random, nil
}

// NewImportID returns a fresh import run identifier
func NewImportID() (string, error) {
	return New(PrefixImport)
}
