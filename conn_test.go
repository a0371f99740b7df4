package discordcrypto

import (
	"bytes"
	"net"
	"testing"
)

func TestConnSend(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	c, err := NewConn(client, Config{Key: testKey(0x01)})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	received := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 256)
		n, err := server.Read(buf)
		if err != nil {
			close(received)
			return
		}
		received <- buf[:n]
	}()

	if err := c.Send(testPacket()); err != nil {
		t.Fatal(err)
	}

	out, ok := <-received
	if !ok {
		t.Fatal("no packet received")
	}
	if len(out) != 12+16+4+4 {
		t.Errorf("wire packet length = %d, want 36", len(out))
	}
	if !bytes.Equal(out[:12], testHeader) {
		t.Errorf("RTP header rewritten on the wire: %02x", out[:12])
	}
	if !bytes.Equal(out[len(out)-4:], []byte{0, 0, 0, 0}) {
		t.Errorf("first lite trailer = %02x, want zero", out[len(out)-4:])
	}
}

func TestConnRejectsMalformedPacket(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	c, err := NewConn(client, Config{Key: testKey(0x01)})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Send([]byte{0x80, 0x78}); err == nil {
		t.Error("truncated packet accepted")
	}

	badVersion := testPacket()
	badVersion[0] = 1 << 6
	if err := c.Send(badVersion); err == nil {
		t.Error("RTP version 1 packet accepted")
	}
}

func TestConnRequiresKey(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	defer client.Close()

	if _, err := NewConn(client, Config{}); err != ErrNotConfigured {
		t.Errorf("keyless conn: err = %v", err)
	}
}
