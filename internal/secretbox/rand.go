package secretbox

import (
	"crypto/rand"
	"io"
)

// FillRandom fills b with cryptographically strong random bytes, suitable for
// per-packet nonces. The underlying reader may block while the OS entropy
// pool initializes; steady-state reads do not block.
func FillRandom(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}
