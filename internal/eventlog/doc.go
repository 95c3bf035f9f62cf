// Package eventlog implements the append-only event log backing every room.
//
// # Overview
//
// Events are persisted in Pebble under keys that sort by room and sequence:
//   - log/m                  (global sequence metadata: lastSeq)
//   - log/{room}/e/{seq_be8} (entries)
//   - log/{room}/act         (room last-activity, unix seconds big-endian)
//
// Records are stored as: varint headerLen | header | payload | crc32c.
// The header carries the event timestamp and type; the payload is the
// serialized JSON object exactly as appended.
//
// Sequences are assigned from one global counter persisted in the same
// batch as the entry, so they are strictly increasing across the whole log
// and total within each room, with possible per-room gaps.
//
// API surface (internal)
//
//	l, _ := eventlog.OpenLog(db)
//	seq, _ := l.Append(ctx, roomID, ts, "add_item", payload)
//	items, _ := l.ReadSince(roomID, 0) // everything
//	items, _ = l.ReadSince(roomID, seq) // nothing new yet
//
// Events are immutable once written; the only delete path is the room
// expiration sweep, which removes a room's whole entry range.
package eventlog
