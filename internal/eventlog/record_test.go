package eventlog

import (
	"bytes"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	header := EncodeHeader(1700000000, "add_item")
	payload := []byte(`{"text":"milk"}`)
	enc := EncodeRecord(header, payload)

	dec, ok := DecodeRecord(enc)
	if !ok {
		t.Fatalf("decode failed")
	}
	if !bytes.Equal(dec.Header, header) || !bytes.Equal(dec.Payload, payload) {
		t.Fatalf("round trip mismatch")
	}
	ts, typ, ok := DecodeHeader(dec.Header)
	if !ok || ts != 1700000000 || typ != "add_item" {
		t.Fatalf("header mismatch: %d %q %v", ts, typ, ok)
	}
}

func TestDecodeRejectsCorruption(t *testing.T) {
	enc := EncodeRecord(EncodeHeader(1, "toggle"), []byte(`{"id":1}`))
	enc[len(enc)/2] ^= 0xff
	if _, ok := DecodeRecord(enc); ok {
		t.Fatalf("expected checksum failure")
	}
}

func TestDecodeRejectsShortInput(t *testing.T) {
	if _, ok := DecodeRecord([]byte{0x01}); ok {
		t.Fatalf("expected failure for short input")
	}
}
