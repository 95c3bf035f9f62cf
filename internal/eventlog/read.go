package eventlog

import (
	"github.com/cockroachdb/pebble"
)

// Item is a single decoded event returned by ReadSince.
type Item struct {
	Seq     uint64
	Ts      int64
	Type    string
	Payload []byte
}

// ReadSince returns every event of a room with seq > since, ascending by
// seq. The result is fully materialized; callers poll again with the last
// returned seq to continue.
func (l *Log) ReadSince(roomID string, since uint64) ([]Item, error) {
	low := KeyEntry(roomID, since+1)
	_, high := EntryBounds(roomID)

	iter, err := l.db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: high})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	items := []Item{}
	for ok := iter.First(); ok; ok = iter.Next() {
		dec, okDec := DecodeRecord(iter.Value())
		if !okDec {
			continue
		}
		ts, eventType, okHdr := DecodeHeader(dec.Header)
		if !okHdr {
			continue
		}
		items = append(items, Item{
			Seq:     seqFromEntryKey(iter.Key()),
			Ts:      ts,
			Type:    eventType,
			Payload: dec.Payload,
		})
	}
	return items, nil
}
