package rtp

// Bit-packing helpers for the RTP header. The first header byte:
//    0 1 2 3 4 5 6 7
//   +-+-+-+-+-+-+-+-+
//   |V=2|P|X|  CC   |
//   +-+-+-+-+-+-+-+-+
// parses with
//    V, P, X, CC := splitByte2114(b)
// and reassembles with joinByte2114(V, P, X, CC).

//   0 1 2 3 4 5 6 7
//   a a b c d d d d
func splitByte2114(v byte) (a2 byte, b1 bool, c1 bool, d4 byte) {
	a2 = v >> 6
	b1 = ((v >> 5) & 0x01) == 1
	c1 = ((v >> 4) & 0x01) == 1
	d4 = v & 0x0f
	return
}

// Inverse of splitByte2114.
func joinByte2114(a2 byte, b1 bool, c1 bool, d4 byte) byte {
	v := (a2 << 6) | (d4 & 0x0f)
	if b1 {
		v |= 0x20
	}
	if c1 {
		v |= 0x10
	}
	return byte(v)
}

// Split a byte into the first bit and the remaining 7 bits, i.e. the second
// header byte:
//    0 1 2 3 4 5 6 7
//   +-+-+-+-+-+-+-+-+
//   |M|     PT      |
//   +-+-+-+-+-+-+-+-+
func splitByte17(v byte) (a1 bool, b7 byte) {
	a1 = (v >> 7) == 1
	b7 = v & 0x7f
	return
}

func joinByte17(b1 bool, b7 byte) byte {
	v := b7 & 0x7f
	if b1 {
		v |= 0x80
	}
	return byte(v)
}
