package main

import (
	"fmt"
	"net"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/net/ipv4"

	"github.com/kolonahe/discordcrypto"
	"github.com/kolonahe/discordcrypto/internal/logging"
)

// Populated via -ldflags="-X ...".
var GitRevisionId string

var log = logging.DefaultLogger.WithTag("discordcryptod")

var (
	flagListen     string
	flagTarget     string
	flagKey        string
	flagEncryption string
	flagVerbose    bool
	flagHelp       bool
	flagVersion    bool
)

func init() {
	flag.StringVarP(&flagListen, "listen", "l", ":5004", "UDP address for plaintext RTP input")
	flag.StringVarP(&flagTarget, "target", "t", "", "Discord voice server address")
	flag.StringVarP(&flagKey, "key", "k", "", "Secret key as 32 comma-separated byte values")
	flag.StringVarP(&flagEncryption, "encryption", "e", "xsalsa20_poly1305_lite", "Nonce mode")
	flag.BoolVarP(&flagVerbose, "verbose", "V", false, "Enable debug logging")
	flag.BoolVarP(&flagHelp, "help", "h", false, "Print usage information and exit")
	flag.BoolVarP(&flagVersion, "version", "v", false, "Print version information and exit")
}

// DSCP Expedited Forwarding, the standard marking for interactive voice.
const tosEF = 0xB8

func main() {
	flag.Parse()

	if flagHelp {
		help()
		os.Exit(0)
	}
	if flagVersion {
		version()
		os.Exit(0)
	}

	if flagVerbose {
		logging.DefaultLogger.Level = logging.Debug
	}

	if flagTarget == "" || flagKey == "" {
		fmt.Fprintln(os.Stderr, "both --target and --key are required (see --help)")
		os.Exit(2)
	}

	key, err := discordcrypto.ParseKey(flagKey)
	if err != nil {
		log.Fatalf("bad --key: %v", err)
	}
	mode, err := discordcrypto.ParseMode(flagEncryption)
	if err != nil {
		log.Fatalf("bad --encryption: %v", err)
	}

	laddr, err := net.ResolveUDPAddr("udp", flagListen)
	if err != nil {
		log.Fatalf("bad --listen: %v", err)
	}
	in, err := net.ListenUDP("udp", laddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer in.Close()

	out, err := net.Dial("udp", flagTarget)
	if err != nil {
		log.Fatalf("dial %s: %v", flagTarget, err)
	}

	// Mark the voice socket Expedited Forwarding. Best effort; some
	// platforms refuse without privileges.
	if err := ipv4.NewConn(out).SetTOS(tosEF); err != nil {
		log.Warn("DSCP marking unavailable: %v", err)
	}

	conn, err := discordcrypto.NewConn(out, discordcrypto.Config{
		Encryption: mode,
		Key:        key,
	})
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	defer conn.Close()

	log.Info("relaying RTP from %s to %s (%s)", in.LocalAddr(), flagTarget, mode)

	buf := make([]byte, 1500)
	for {
		n, _, err := in.ReadFromUDP(buf)
		if err != nil {
			log.Fatalf("read: %v", err)
		}
		if err := conn.Send(buf[:n]); err != nil {
			// Drop the packet, keep the stream going.
			log.Warn("drop packet: %v", err)
		}
	}
}

func version() {
	fmt.Println("discordcryptod", GitRevisionId)
}
