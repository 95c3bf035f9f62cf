package room

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"

	pebblestore "github.com/alkapone312/shared-checklist/internal/storage/pebble"
	"github.com/alkapone312/shared-checklist/pkg/id"
)

var (
	// ErrNotFound reports a room id with no record, including rooms already
	// removed by the expiration sweep.
	ErrNotFound = errors.New("room not found")
	// ErrForbidden reports a token mismatch. Terminal; callers never retry.
	ErrForbidden = errors.New("invalid token")
)

// Meta is the durable room record. The token is a shared secret returned
// once at creation and compared on every subsequent access.
type Meta struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	CreatedAt int64  `json:"createdAt"`
}

var roomPrefix = []byte("room/")

// MetaKey builds the metadata key for a room.
func MetaKey(roomID string) []byte {
	k := make([]byte, 0, len(roomPrefix)+len(roomID))
	k = append(k, roomPrefix...)
	k = append(k, roomID...)
	return k
}

// PrefixBounds returns the [low, high) key bounds covering every room record.
func PrefixBounds() (low, high []byte) {
	low = append([]byte(nil), roomPrefix...)
	high = append(append([]byte(nil), roomPrefix...), 0xff)
	return low, high
}

// DecodeMeta parses a stored room record.
func DecodeMeta(b []byte) (Meta, error) {
	var m Meta
	if err := json.Unmarshal(b, &m); err != nil {
		return Meta{}, fmt.Errorf("room: decode meta: %w", err)
	}
	return m, nil
}

// Create generates a room with fresh random id and token and persists it.
// Ids are 128-bit random values, so create inserts blindly without a
// collision check.
func Create(db *pebblestore.DB, now int64) (Meta, error) {
	roomID, err := id.NewString()
	if err != nil {
		return Meta{}, err
	}
	token, err := id.NewString()
	if err != nil {
		return Meta{}, err
	}
	m := Meta{ID: roomID, Token: token, CreatedAt: now}
	b, err := json.Marshal(m)
	if err != nil {
		return Meta{}, err
	}
	if err := db.Set(MetaKey(roomID), b); err != nil {
		return Meta{}, err
	}
	return m, nil
}

// Get fetches a room record by id.
func Get(db *pebblestore.DB, roomID string) (Meta, error) {
	b, err := db.Get(MetaKey(roomID))
	if err != nil {
		if errors.Is(err, pebblestore.ErrNotFound) {
			return Meta{}, ErrNotFound
		}
		return Meta{}, err
	}
	return DecodeMeta(b)
}

// ValidateToken fetches the room and compares the supplied token against
// the stored one in constant time. Returns the room on success.
func ValidateToken(db *pebblestore.DB, roomID, token string) (Meta, error) {
	m, err := Get(db, roomID)
	if err != nil {
		return Meta{}, err
	}
	if subtle.ConstantTimeCompare([]byte(m.Token), []byte(token)) != 1 {
		return Meta{}, ErrForbidden
	}
	return m, nil
}
