package discordcrypto

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/kolonahe/discordcrypto/internal/secretbox"
)

// Mode selects how the 24-byte secretbox nonce is constructed for each
// packet, and what (if anything) is appended to the output so the receiver
// can reconstruct it. The three modes are the ones Discord's voice UDP
// endpoint accepts.
type Mode int

const (
	// ModeLite derives the nonce from a 32-bit counter, incremented per
	// packet and appended big-endian as a 4-byte trailer. Discord's
	// default, and the zero value.
	ModeLite Mode = iota

	// ModeStandard derives the nonce from the packet's own RTP header
	// padded with zeros. No trailer; uniqueness rests on the header's
	// sequence number and timestamp varying per packet.
	ModeStandard

	// ModeSuffix draws a fresh random nonce per packet and appends all 24
	// bytes as a trailer.
	ModeSuffix
)

// ParseMode maps the wire names from Discord's "select protocol" payload to
// a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "xsalsa20_poly1305":
		return ModeStandard, nil
	case "xsalsa20_poly1305_suffix":
		return ModeSuffix, nil
	case "xsalsa20_poly1305_lite":
		return ModeLite, nil
	}
	return 0, errors.Errorf("unknown encryption mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "xsalsa20_poly1305"
	case ModeSuffix:
		return "xsalsa20_poly1305_suffix"
	case ModeLite:
		return "xsalsa20_poly1305_lite"
	}
	return "unknown"
}

// overhead returns the number of bytes encryption adds to a packet: the
// Poly1305 tag plus the mode's nonce trailer.
func (m Mode) overhead() int {
	return secretbox.Overhead + m.trailerLen()
}

func (m Mode) trailerLen() int {
	switch m {
	case ModeSuffix:
		return secretbox.NonceSize
	case ModeLite:
		return 4
	default:
		return 0
	}
}

// A nonceMaker produces the nonce for the next packet. Each mode carries
// only the state it needs; lite holds the monotonic counter.
type nonceMaker interface {
	// fill writes the nonce for the next packet into nonce, which arrives
	// zeroed. header is the packet's 12-byte RTP header. It returns the
	// number of leading nonce bytes to append to the output as a trailer.
	// fill must not mutate mode state; advance commits it.
	fill(nonce *[secretbox.NonceSize]byte, header []byte) (int, error)

	// advance commits state after a successful encryption.
	advance()
}

func newNonceMaker(m Mode) nonceMaker {
	switch m {
	case ModeStandard:
		return standardNonce{}
	case ModeSuffix:
		return suffixNonce{}
	default:
		return new(liteNonce)
	}
}

// nonce = RTP header || 12 zero bytes
type standardNonce struct{}

func (standardNonce) fill(nonce *[secretbox.NonceSize]byte, header []byte) (int, error) {
	copy(nonce[:], header)
	return 0, nil
}

func (standardNonce) advance() {}

// nonce = 24 random bytes, echoed in full after the ciphertext
type suffixNonce struct{}

func (suffixNonce) fill(nonce *[secretbox.NonceSize]byte, _ []byte) (int, error) {
	if err := secretbox.FillRandom(nonce[:]); err != nil {
		return 0, ErrRNGFailed
	}
	return secretbox.NonceSize, nil
}

func (suffixNonce) advance() {}

// nonce = big-endian counter || 20 zero bytes, counter echoed after the
// ciphertext
type liteNonce struct {
	counter uint32
}

func (n *liteNonce) fill(nonce *[secretbox.NonceSize]byte, _ []byte) (int, error) {
	binary.BigEndian.PutUint32(nonce[0:4], n.counter)
	return 4, nil
}

func (n *liteNonce) advance() {
	if n.counter < math.MaxUint32 {
		n.counter++
	} else {
		n.counter = 0
	}
}
