package secretbox

import (
	"bytes"
	"errors"
	"sync"
)

// One-shot engine initialization, analogous to sodium_init(). Must succeed
// before any session encrypts; suffix-mode nonces depend on the random
// source being usable.

var (
	initOnce sync.Once
	initErr  error
)

// Init runs the one-time self-test of the random source and the seal
// primitive. Safe for concurrent use; every call after the first returns the
// recorded result.
func Init() error {
	initOnce.Do(func() {
		initErr = selftest()
	})
	return initErr
}

func selftest() error {
	var key [KeySize]byte
	var nonce [NonceSize]byte

	if err := FillRandom(key[:]); err != nil {
		return err
	}
	if err := FillRandom(nonce[:]); err != nil {
		return err
	}

	probe := []byte("discordcrypto")
	box := Seal(nil, probe, &nonce, &key)
	if len(box) != len(probe)+Overhead {
		return errors.New("secretbox: unexpected seal overhead")
	}

	opened, ok := Open(nil, box, &nonce, &key)
	if !ok || !bytes.Equal(opened, probe) {
		return errors.New("secretbox: seal/open self-test failed")
	}
	return nil
}
