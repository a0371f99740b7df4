package secretbox

// Thin binding over the XSalsa20-Poly1305 "secretbox" construction. Discord's
// voice UDP endpoint expects the canonical NaCl combined layout: the 16-byte
// Poly1305 authenticator first, immediately followed by the ciphertext. The
// golang.org/x/crypto implementation is byte-compatible with libsodium's
// crypto_secretbox_easy.

import (
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// KeySize is the secret key length in bytes.
	KeySize = 32

	// NonceSize is the nonce length in bytes. A nonce must never repeat
	// under the same key.
	NonceSize = 24

	// Overhead is the number of bytes the seal operation adds: the
	// Poly1305 authenticator.
	Overhead = secretbox.Overhead
)

// Seal encrypts and authenticates plaintext, appending the result to out and
// returning the extended slice. The appended region is exactly
// len(plaintext)+Overhead bytes: tag first, then ciphertext.
func Seal(out, plaintext []byte, nonce *[NonceSize]byte, key *[KeySize]byte) []byte {
	return secretbox.Seal(out, plaintext, nonce, key)
}

// Open authenticates and decrypts a sealed box, appending the plaintext to
// out. The second return value reports whether authentication succeeded.
// The encrypt path never calls this; it exists so hosts and tests can verify
// sealed output.
func Open(out, box []byte, nonce *[NonceSize]byte, key *[KeySize]byte) ([]byte, bool) {
	return secretbox.Open(out, box, nonce, key)
}
