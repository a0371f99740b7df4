package secretbox

import (
	"bytes"
	"testing"
)

func TestSealRoundtrip(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte
	for i := range key {
		key[i] = 0x01
	}
	nonce[0] = 0x2A

	plaintext := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	box := Seal(nil, plaintext, &nonce, &key)

	if len(box) != len(plaintext)+Overhead {
		t.Errorf("sealed length = %d, want %d", len(box), len(plaintext)+Overhead)
	}

	opened, ok := Open(nil, box, &nonce, &key)
	if !ok {
		t.Fatal("authentication failed on untampered box")
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("roundtrip mismatch: %02x", opened)
	}
}

func TestSealDeterministic(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte
	key[0] = 0x42

	a := Seal(nil, []byte("same input"), &nonce, &key)
	b := Seal(nil, []byte("same input"), &nonce, &key)
	if !bytes.Equal(a, b) {
		t.Error("seal is not deterministic for fixed key and nonce")
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte

	box := Seal(nil, []byte("payload"), &nonce, &key)

	// Flip one bit anywhere, including within the leading tag.
	for _, i := range []int{0, Overhead - 1, Overhead, len(box) - 1} {
		tampered := append([]byte(nil), box...)
		tampered[i] ^= 0x01
		if _, ok := Open(nil, tampered, &nonce, &key); ok {
			t.Errorf("tampered byte %d accepted", i)
		}
	}
}

func TestFillRandom(t *testing.T) {
	a := make([]byte, NonceSize)
	b := make([]byte, NonceSize)
	if err := FillRandom(a); err != nil {
		t.Fatal(err)
	}
	if err := FillRandom(b); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("two random nonces are identical")
	}
}

func TestInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatal(err)
	}
	// Second call returns the recorded result.
	if err := Init(); err != nil {
		t.Fatal(err)
	}
}
