package rtp

import (
	"fmt"

	errors "golang.org/x/xerrors"

	"github.com/kolonahe/discordcrypto/internal/packet"
)

// RTP Data Transfer Protocol, as defined in RFC 3550 Section 5.

// An RTP packet begins with a fixed 12-byte header, optionally followed by
// 32-bit CSRC identifiers, then the payload.
// See https://tools.ietf.org/html/rfc3550#section-5.1
//    0                   1                   2                   3
//    0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//   |V=2|P|X|  CC   |M|     PT      |       sequence number         |
//   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//   |                           timestamp                           |
//   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//   |           synchronization source (SSRC) identifier            |
//   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// Discord voice packets carry version 2, payload type 0x78, and no CSRCs.
type Header struct {
	Padding     bool
	Extension   bool
	Marker      bool
	PayloadType byte
	Sequence    uint16
	Timestamp   uint32
	SSRC        uint32
}

const (
	// HeaderSize is the fixed RTP header length. These bytes are forwarded
	// to the output packet verbatim and never encrypted.
	HeaderSize = 12

	// RFC 3550 defines RTP version 2.
	version = 2
)

type errBadVersion byte

func (e errBadVersion) Error() string {
	return fmt.Sprintf("invalid RTP version: %d", byte(e))
}

func (h *Header) WriteTo(w *packet.Writer) {
	w.WriteByte(joinByte2114(version, h.Padding, h.Extension, 0))
	w.WriteByte(joinByte17(h.Marker, h.PayloadType))
	w.WriteUint16(h.Sequence)
	w.WriteUint32(h.Timestamp)
	w.WriteUint32(h.SSRC)
}

func (h *Header) ReadFrom(r *packet.Reader) error {
	if err := r.CheckRemaining(HeaderSize); err != nil {
		return errors.Errorf("short buffer: %v", err)
	}

	var v byte
	v, h.Padding, h.Extension, _ = splitByte2114(r.ReadByte())
	if v != version {
		return errBadVersion(v)
	}
	h.Marker, h.PayloadType = splitByte17(r.ReadByte())
	h.Sequence = r.ReadUint16()
	h.Timestamp = r.ReadUint32()
	h.SSRC = r.ReadUint32()

	return nil
}
