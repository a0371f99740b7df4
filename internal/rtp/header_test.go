package rtp

import (
	"bytes"
	"testing"

	"github.com/kolonahe/discordcrypto/internal/packet"
)

func TestHeaderRoundtrip(t *testing.T) {
	in := Header{
		Marker:      true,
		PayloadType: 0x78,
		Sequence:    0x0001,
		Timestamp:   0x00012345,
		SSRC:        0x1337d00d,
	}

	w := packet.NewWriterSize(HeaderSize)
	in.WriteTo(w)
	if w.Length() != HeaderSize {
		t.Fatalf("header length = %d, want %d", w.Length(), HeaderSize)
	}

	var out Header
	if err := out.ReadFrom(packet.NewReader(w.Bytes())); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("roundtrip mismatch: %+v != %+v", out, in)
	}
}

func TestHeaderBytes(t *testing.T) {
	// The Discord voice header from the protocol docs: version 2, payload
	// type 0x78, big-endian sequence/timestamp/SSRC.
	h := Header{
		PayloadType: 0x78,
		Sequence:    1,
		SSRC:        42,
	}
	w := packet.NewWriterSize(HeaderSize)
	h.WriteTo(w)

	want := []byte{
		0x80, 0x78, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x2A,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("header bytes = %02x, want %02x", w.Bytes(), want)
	}
}

func TestHeaderBadVersion(t *testing.T) {
	buf := make([]byte, HeaderSize)
	buf[0] = 1 << 6 // version 1

	var h Header
	if err := h.ReadFrom(packet.NewReader(buf)); err == nil {
		t.Error("version 1 header accepted")
	}
}

func TestHeaderShortBuffer(t *testing.T) {
	var h Header
	if err := h.ReadFrom(packet.NewReader(make([]byte, HeaderSize-1))); err == nil {
		t.Error("11-byte buffer accepted")
	}
}

func TestSplitJoin(t *testing.T) {
	v, p, x, cc := splitByte2114(0x80 | 0x20 | 0x03)
	if v != 2 || !p || x || cc != 3 {
		t.Fail()
	}
	if joinByte2114(v, p, x, cc) != 0x80|0x20|0x03 {
		t.Fail()
	}

	m, pt := splitByte17(0x80 | 0x78)
	if !m || pt != 0x78 {
		t.Fail()
	}
	if joinByte17(m, pt) != 0x80|0x78 {
		t.Fail()
	}
}
