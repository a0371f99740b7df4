package discordcrypto

import (
	"net"
	"sync"

	"github.com/kolonahe/discordcrypto/internal/packet"
	"github.com/kolonahe/discordcrypto/internal/rtp"
)

// Conn is a ready-made streaming adapter: it feeds whole RTP packets through
// a session in arrival order and writes the ciphertext packets to an
// underlying connection. Hosts that manage their own transport should use
// Session directly.
type Conn struct {
	conn    net.Conn
	session *Session

	sync.Mutex
}

// NewConn wraps conn with an encrypting session. The config must include a
// key; an unconfigured relay has nothing to send.
func NewConn(conn net.Conn, config Config) (*Conn, error) {
	if config.Key == nil {
		return nil, ErrNotConfigured
	}
	session, err := NewSession(config)
	if err != nil {
		return nil, err
	}
	return &Conn{conn: conn, session: session}, nil
}

// Send encrypts a single RTP packet and writes it to the underlying
// connection. Timing metadata in the header passes through untouched.
func (c *Conn) Send(pkt []byte) error {
	c.Lock()
	defer c.Unlock()

	var hdr rtp.Header
	if err := hdr.ReadFrom(packet.NewReader(pkt)); err != nil {
		return err
	}

	out := make([]byte, c.session.OutputLength(len(pkt)))
	if err := c.session.EncryptPacket(out, pkt); err != nil {
		return err
	}

	log.Debug("send seq=%d ts=%d ssrc=%08x, %d bytes", hdr.Sequence, hdr.Timestamp, hdr.SSRC, len(out))

	_, err := c.conn.Write(out)
	return err
}

// Close the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}
