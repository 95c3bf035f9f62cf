package eventlog

import (
	"context"
	"encoding/binary"
	"sync"

	pebblestore "github.com/alkapone312/shared-checklist/internal/storage/pebble"
)

// Log provides append-only event storage shared by every room. Sequence
// numbers come from a single global counter, so per-room sequences are
// strictly increasing but not gap-free.
type Log struct {
	db *pebblestore.DB

	mu      sync.Mutex
	lastSeq uint64
}

// OpenLog initializes a Log and loads the last sequence from metadata
// (if any).
func OpenLog(db *pebblestore.DB) (*Log, error) {
	l := &Log{db: db}
	meta, err := db.Get(KeyMeta())
	if err == nil && len(meta) >= 8 {
		l.lastSeq = binary.BigEndian.Uint64(meta[:8])
	}
	return l, nil
}

// Append stores one event for a room as a single atomic batch: the entry,
// the advanced global sequence, and the room's last-activity timestamp.
// Returns the assigned sequence.
func (l *Log) Append(ctx context.Context, roomID string, ts int64, eventType string, payload []byte) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.db.NewBatch()
	defer b.Close()

	seq := l.lastSeq + 1
	val := EncodeRecord(EncodeHeader(ts, eventType), payload)
	if err := b.Set(KeyEntry(roomID, seq), val, nil); err != nil {
		return 0, err
	}

	var meta [8]byte
	binary.BigEndian.PutUint64(meta[:], seq)
	if err := b.Set(KeyMeta(), meta[:], nil); err != nil {
		return 0, err
	}

	var act [8]byte
	binary.BigEndian.PutUint64(act[:], uint64(ts))
	if err := b.Set(KeyActivity(roomID), act[:], nil); err != nil {
		return 0, err
	}

	if err := l.db.CommitBatch(ctx, b); err != nil {
		return 0, err
	}
	l.lastSeq = seq
	return seq, nil
}

// LastActivity returns the room's most recent append timestamp, if any
// event was ever appended.
func (l *Log) LastActivity(roomID string) (int64, bool) {
	v, err := l.db.Get(KeyActivity(roomID))
	if err != nil || len(v) < 8 {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(v[:8])), true
}
