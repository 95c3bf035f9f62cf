package eventlog

import (
	"encoding/binary"
)

// Keyspace helpers for Pebble keys.
//
// Layout (byte-wise, lexicographically sortable):
// - log/m                      (global sequence metadata: lastSeq)
// - log/{room}/e/{seq_be8}     (event entries, ordered per room)
// - log/{room}/act             (last-activity unix seconds, big-endian)

var (
	logPrefix   = []byte("log/")
	metaKey     = []byte("log/m")
	entrySeg    = []byte("/e/")
	activitySeg = []byte("/act")
)

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// KeyMeta returns the global sequence metadata key.
func KeyMeta() []byte { return metaKey }

// KeyEntry builds an entry key with a big-endian sequence for proper ordering.
func KeyEntry(roomID string, seq uint64) []byte {
	k := make([]byte, 0, len(logPrefix)+len(roomID)+len(entrySeg)+8)
	k = append(k, logPrefix...)
	k = append(k, roomID...)
	k = append(k, entrySeg...)
	k = appendBE8(k, seq)
	return k
}

// KeyActivity builds the last-activity key for a room.
func KeyActivity(roomID string) []byte {
	k := make([]byte, 0, len(logPrefix)+len(roomID)+len(activitySeg))
	k = append(k, logPrefix...)
	k = append(k, roomID...)
	k = append(k, activitySeg...)
	return k
}

// EntryBounds returns the [low, high) key bounds covering every entry of a
// room, suitable for iterator bounds and range deletes.
func EntryBounds(roomID string) (low, high []byte) {
	low = KeyEntry(roomID, 0)
	high = append(KeyEntry(roomID, ^uint64(0)), 0x00)
	return low, high
}

// seqFromEntryKey extracts the sequence from an entry key's trailing 8 bytes.
func seqFromEntryKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(key)-8:])
}
