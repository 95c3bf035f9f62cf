package eventlog

import (
	"encoding/binary"
	"hash/crc32"
)

// Record encoding: varint headerLen | header | payload | crc32c(header|payload)
//
// The header is the event timestamp (8 bytes big-endian unix seconds)
// followed by the event type bytes. The payload is the serialized JSON
// object as appended.

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// EncodeHeader packs the event timestamp and type into a record header.
func EncodeHeader(ts int64, eventType string) []byte {
	h := make([]byte, 0, 8+len(eventType))
	h = appendBE8(h, uint64(ts))
	h = append(h, eventType...)
	return h
}

// DecodeHeader unpacks a record header. Returns ok=false for short headers.
func DecodeHeader(h []byte) (ts int64, eventType string, ok bool) {
	if len(h) < 8 {
		return 0, "", false
	}
	return int64(binary.BigEndian.Uint64(h[:8])), string(h[8:]), true
}

// EncodeRecord frames a header and payload with a length prefix and checksum.
func EncodeRecord(header, payload []byte) []byte {
	out := make([]byte, 0, 10+len(header)+len(payload)+4)
	var tmp [10]byte
	n := binary.PutUvarint(tmp[:], uint64(len(header)))
	out = append(out, tmp[:n]...)
	out = append(out, header...)
	out = append(out, payload...)

	crc := crc32.Update(0, castagnoli, header)
	crc = crc32.Update(crc, castagnoli, payload)
	var crcb [4]byte
	binary.BigEndian.PutUint32(crcb[:], crc)
	out = append(out, crcb[:]...)
	return out
}

// Decoded is the result of DecodeRecord.
type Decoded struct {
	Header  []byte
	Payload []byte
}

// DecodeRecord parses and checksums a framed record.
func DecodeRecord(b []byte) (Decoded, bool) {
	if len(b) < 1+4 {
		return Decoded{}, false
	}
	hlen, n := binary.Uvarint(b)
	if n <= 0 {
		return Decoded{}, false
	}
	if int(n)+int(hlen)+4 > len(b) {
		return Decoded{}, false
	}
	header := b[n : n+int(hlen)]
	payload := b[n+int(hlen) : len(b)-4]
	expect := binary.BigEndian.Uint32(b[len(b)-4:])
	crc := crc32.Update(0, castagnoli, header)
	crc = crc32.Update(crc, castagnoli, payload)
	if crc != expect {
		return Decoded{}, false
	}
	return Decoded{Header: append([]byte(nil), header...), Payload: append([]byte(nil), payload...)}, true
}
