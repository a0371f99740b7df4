package discordcrypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("key must be exactly 32 bytes")

	// ErrNotConfigured is returned when encryption is attempted before a
	// valid key has been set.
	ErrNotConfigured = errors.New("no encryption key configured")

	// ErrShortPacket is returned when an input packet is smaller than the
	// 12-byte RTP header.
	ErrShortPacket = errors.New("packet shorter than RTP header")

	// ErrBufferTooSmall is returned when the output buffer length differs
	// from OutputLength(len(input)).
	ErrBufferTooSmall = errors.New("output buffer not sized to OutputLength")

	// ErrRNGFailed is returned when a suffix-mode nonce could not be drawn
	// from the random source.
	ErrRNGFailed = errors.New("random source unavailable")

	// ErrEngineStartFailed is returned when the one-time initialization of
	// the crypto subsystem failed.
	ErrEngineStartFailed = errors.New("crypto engine initialization failed")
)
