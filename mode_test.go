package discordcrypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	for _, name := range []string{
		"xsalsa20_poly1305",
		"xsalsa20_poly1305_suffix",
		"xsalsa20_poly1305_lite",
	} {
		mode, err := ParseMode(name)
		assert.Nil(t, err)
		assert.Equal(t, name, mode.String())
	}

	_, err := ParseMode("aead_aes256_gcm")
	assert.NotNil(t, err)
}

func TestDefaultModeIsLite(t *testing.T) {
	var config Config
	assert.Equal(t, ModeLite, config.Encryption)
	assert.Equal(t, "xsalsa20_poly1305_lite", config.Encryption.String())
}

func TestModeOverhead(t *testing.T) {
	assert.Equal(t, 16, ModeStandard.overhead())
	assert.Equal(t, 16+24, ModeSuffix.overhead())
	assert.Equal(t, 16+4, ModeLite.overhead())
}
