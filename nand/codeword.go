package nand

import "github.com/sarchlab/nandctrl/nand/internal/eccpack"

// PackCodeword packs eight 10-bit parity values into the ten on-media
// codeword bytes of the 4-bit codec.
func PackCodeword(values [8]uint16) [10]byte {
	return eccpack.Pack(values)
}

// UnpackCodeword recovers the eight 10-bit parity values from a
// ten-byte codeword.
func UnpackCodeword(code [10]byte) [8]uint16 {
	return eccpack.Unpack(code)
}
