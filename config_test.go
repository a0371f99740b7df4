package discordcrypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	parts := make([]string, 32)
	for i := range parts {
		parts[i] = "1"
	}

	key, err := ParseKey(strings.Join(parts, ","))
	assert.Nil(t, err)
	assert.Equal(t, testKey(0x01), key)

	// Spaces after commas are tolerated.
	key, err = ParseKey(strings.Join(parts, ", "))
	assert.Nil(t, err)
	assert.Equal(t, testKey(0x01), key)
}

func TestParseKeyWrongLength(t *testing.T) {
	_, err := ParseKey("1,2,3")
	assert.Equal(t, ErrInvalidKeyLength, err)
}

func TestParseKeyBadValues(t *testing.T) {
	parts := make([]string, 32)
	for i := range parts {
		parts[i] = "0"
	}

	for _, bad := range []string{"256", "-1", "x", ""} {
		parts[7] = bad
		_, err := ParseKey(strings.Join(parts, ","))
		assert.NotNil(t, err, "value %q accepted", bad)
	}
}
