package main

import (
	"fmt"

	"github.com/fatih/color"
)

const helpString = `Encrypts Opus RTP packets for Discord voice servers

Usage: discordcryptod [OPTION]...

Network:
  -l, --listen=ADDR      UDP address for plaintext RTP input (default: :5004)
  -t, --target=ADDR      Discord voice server address, host:port (required)

Encryption:
  -k, --key=BYTES        Secret key from the voice gateway session
                           description, as 32 comma-separated byte values
                           (required)
  -e, --encryption=MODE  Nonce mode: xsalsa20_poly1305,
                           xsalsa20_poly1305_suffix, or
                           xsalsa20_poly1305_lite
                           (default: xsalsa20_poly1305_lite)

Miscellaneous:
  -V, --verbose          Enable debug logging
  -h, --help             Prints this help message and exits
  -v, --version          Prints version information and exits

Example (fed by GStreamer):
  gst-launch-1.0 audiotestsrc ! audioconvert ! audioresample ! opusenc ! \
    rtpopuspay pt=120 ssrc=1 ! udpsink host=127.0.0.1 port=5004
  discordcryptod --target=voice.discord.gg:443 --key=1,2,3,...`

// Help information is printed and program exits
func help() {
	b := color.New(color.FgCyan, color.Bold)
	y := color.New(color.FgYellow)

	b.Printf("discordcrypto")
	y.Println("d")
	fmt.Println(helpString)
}
