package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ID is a 128-bit random identifier. Room ids and access tokens are both
// IDs; the hex form is the only representation that ever leaves the process.
type ID [16]byte

// New returns a fresh ID from the system CSPRNG.
func New() (ID, error) {
	var i ID
	if _, err := rand.Read(i[:]); err != nil {
		return ID{}, fmt.Errorf("id: read random: %w", err)
	}
	return i, nil
}

// NewString is New followed by String.
func NewString() (string, error) {
	i, err := New()
	if err != nil {
		return "", err
	}
	return i.String(), nil
}

// Bytes returns the raw 16-byte representation.
func (i ID) Bytes() []byte { b := make([]byte, 16); copy(b, i[:]); return b }

// String returns the 32-character lowercase hex form.
func (i ID) String() string { return fmtHex(i[:]) }

// Parse decodes a 32-character hex string into an ID.
func Parse(s string) (ID, error) {
	var i ID
	if len(s) != 32 {
		return ID{}, fmt.Errorf("id: expected 32 hex digits, got %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return ID{}, fmt.Errorf("id: %w", err)
	}
	copy(i[:], b)
	return i, nil
}

// fmtHex is a small, allocation-lean hex encoder for fixed-size IDs.
func fmtHex(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexdigits[v>>4]
		out[i*2+1] = hexdigits[v&0x0f]
	}
	return string(out)
}
