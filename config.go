package discordcrypto

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kolonahe/discordcrypto/internal/secretbox"
)

// Config carries the two settable attributes of a session.
type Config struct {
	// Encryption mode. The zero value is ModeLite, Discord's default.
	Encryption Mode

	// Key is the 32-byte secret from Discord's voice gateway "session
	// description" payload. May be nil to create the session unconfigured.
	Key []byte
}

// ParseKey parses a key given as a comma-separated list of exactly 32 byte
// values, the form Discord's gateway delivers it in and the form the
// original GStreamer element accepted on its launch line.
func ParseKey(s string) ([]byte, error) {
	parts := strings.Split(s, ",")
	if len(parts) != secretbox.KeySize {
		return nil, ErrInvalidKeyLength
	}

	key := make([]byte, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return nil, errors.Errorf("key[%d]: %q is not a byte value", i, p)
		}
		key[i] = byte(v)
	}
	return key, nil
}
