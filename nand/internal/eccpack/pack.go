// Package eccpack implements the on-media packing of the 4-bit ECC
// codeword: eight 10-bit parity values in ten bytes. The boot ROM reads
// the same layout, so the bit placement must never change.
package eccpack

import "encoding/binary"

// Words builds the two-lane accumulator words from eight 10-bit values.
// Word i carries value 2i in bits 9:0 and value 2i+1 in bits 25:16,
// matching the hardware register layout.
func Words(values [8]uint16) [4]uint32 {
	var w [4]uint32
	for i := range w {
		w[i] = uint32(values[2*i]&0x3ff) |
			uint32(values[2*i+1]&0x3ff)<<16
	}
	return w
}

// Values splits four accumulator words back into eight 10-bit lanes.
func Values(words [4]uint32) [8]uint16 {
	var v [8]uint16
	for i, w := range words {
		v[2*i] = uint16(w) & 0x3ff
		v[2*i+1] = uint16(w>>16) & 0x3ff
	}
	return v
}

// PackWords packs the four accumulator words into the ten codeword
// bytes, making two passes which each convert four values (in the upper
// and lower halves of two words) into five bytes.
func PackWords(words [4]uint32) [10]byte {
	var code [10]byte
	out := code[:]
	for i := 0; i < 2; i++ {
		p := words[2*i:]
		out[0] = byte(p[0])
		out[1] = byte((p[0]>>8)&0x03) | byte((p[0]>>14)&0xfc)
		out[2] = byte((p[0]>>22)&0x0f) | byte((p[1]<<4)&0xf0)
		out[3] = byte((p[1]>>4)&0x3f) | byte((p[1]>>10)&0xc0)
		out[4] = byte(p[1] >> 18)
		out = out[5:]
	}
	return code
}

// Pack packs eight 10-bit values into the ten codeword bytes.
func Pack(values [8]uint16) [10]byte {
	return PackWords(Words(values))
}

// Unpack recovers the eight 10-bit values from a ten-byte codeword. It
// is the exact inverse of Pack over values in [0, 1023].
func Unpack(code [10]byte) [8]uint16 {
	var e [5]uint16
	for i := range e {
		e[i] = binary.LittleEndian.Uint16(code[2*i : 2*i+2])
	}

	var v [8]uint16
	v[0] = e[0] & 0x3ff
	v[1] = (e[0]>>10)&0x3f | (e[1]<<6)&0x3c0
	v[2] = (e[1] >> 4) & 0x3ff
	v[3] = (e[1]>>14)&0x3 | (e[2]<<2)&0x3fc
	v[4] = e[2]>>8 | (e[3]<<8)&0x300
	v[5] = (e[3] >> 2) & 0x3ff
	v[6] = (e[3]>>12)&0xf | (e[4]<<4)&0x3f0
	v[7] = (e[4] >> 6) & 0x3ff
	return v
}
