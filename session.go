// Package discordcrypto encrypts Opus-over-RTP packets for Discord's voice
// UDP endpoint. Each input packet keeps its 12-byte RTP header verbatim; the
// payload is replaced by an XSalsa20-Poly1305 secretbox, followed by a
// mode-specific nonce trailer.
//
// See https://discordapp.com/developers/docs/topics/voice-connections#encrypting-and-sending-voice
package discordcrypto

import (
	"github.com/golang/groupcache/lru"

	"github.com/kolonahe/discordcrypto/internal/rtp"
	"github.com/kolonahe/discordcrypto/internal/secretbox"
)

// Number of recent RTP headers remembered for the standard-mode nonce reuse
// diagnostic.
const seenHeaders = 1024

// A Session encrypts one RTP stream under one key. It owns its key material
// and the lite-mode counter exclusively; callers must serialize access.
// Multiple sessions may run concurrently, each with its own state.
type Session struct {
	mode   Mode
	key    [secretbox.KeySize]byte
	ready  bool
	nonces nonceMaker

	// Recent headers, standard mode only. A repeated header means a
	// repeated nonce under the current key, which breaks confidentiality.
	seen *lru.Cache
}

// NewSession runs the one-time engine initialization and returns a session
// for the given configuration. If config.Key is nil the session is created
// unconfigured and EncryptPacket fails with ErrNotConfigured until Configure
// is called.
func NewSession(config Config) (*Session, error) {
	if err := secretbox.Init(); err != nil {
		log.Error("crypto engine self-test failed: %v", err)
		return nil, ErrEngineStartFailed
	}

	s := &Session{
		mode:   config.Encryption,
		nonces: newNonceMaker(config.Encryption),
	}
	if config.Key != nil {
		if err := s.Configure(config.Key, config.Encryption); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Configure sets or replaces the key and mode. The lite-mode counter resets
// to zero on every call, so a key change always restores nonce freshness.
// Rejects keys that are not exactly 32 bytes without touching session state.
func (s *Session) Configure(key []byte, mode Mode) error {
	if len(key) != secretbox.KeySize {
		return ErrInvalidKeyLength
	}

	copy(s.key[:], key)
	s.mode = mode
	s.nonces = newNonceMaker(mode)
	if mode == ModeStandard {
		s.seen = lru.New(seenHeaders)
	} else {
		s.seen = nil
	}
	s.ready = true
	return nil
}

// Encryption returns the session's current mode.
func (s *Session) Encryption() Mode {
	return s.mode
}

// Key returns a copy of the configured key, or nil if none has been set.
func (s *Session) Key() []byte {
	if !s.ready {
		return nil
	}
	key := make([]byte, secretbox.KeySize)
	copy(key, s.key[:])
	return key
}

// OutputLength returns the exact output packet size for an input packet of
// inputLen bytes under the session's current mode.
func (s *Session) OutputLength(inputLen int) int {
	return inputLen + s.mode.overhead()
}

// EncryptPacket encrypts the RTP packet in into out, which the caller must
// size to exactly OutputLength(len(in)). The first 12 bytes of in are copied
// to out unmodified; the rest is sealed and the mode's nonce trailer
// appended. On error nothing is written and session state, including the
// lite-mode counter, is unchanged.
func (s *Session) EncryptPacket(out, in []byte) error {
	if !s.ready {
		return ErrNotConfigured
	}
	if len(in) < rtp.HeaderSize {
		return ErrShortPacket
	}
	if len(out) != s.OutputLength(len(in)) {
		return ErrBufferTooSmall
	}

	var nonce [secretbox.NonceSize]byte
	trailer, err := s.nonces.fill(&nonce, in[:rtp.HeaderSize])
	if err != nil {
		return err
	}

	copy(out[:rtp.HeaderSize], in[:rtp.HeaderSize])
	secretbox.Seal(out[rtp.HeaderSize:rtp.HeaderSize], in[rtp.HeaderSize:], &nonce, &s.key)
	if trailer > 0 {
		copy(out[len(out)-trailer:], nonce[:trailer])
	}
	s.nonces.advance()

	if s.seen != nil {
		h := string(in[:rtp.HeaderSize])
		if _, dup := s.seen.Get(h); dup {
			log.Warn("repeated RTP header % 02x reuses its nonce under the current key", in[:rtp.HeaderSize])
		}
		s.seen.Add(h, nil)
	}
	return nil
}
