package nand

// ecc1Bit is the 1-bit Hamming-style hardware codec. The accumulator is
// per chip select; only the control register holding the start bits is
// shared.
type ecc1Bit struct {
	transfer Transfer
	guard    *hwGuard
	chipSel  int
}

func (e *ecc1Bit) Bytes() int    { return 3 }
func (e *ecc1Bit) Strength() int { return 1 }

func (e *ecc1Bit) readAccumulator() uint32 {
	return e.transfer.ReadReg(RegNANDF1EC + 4*uint32(e.chipSel))
}

// Prepare drains the accumulator and restarts it for the next chunk.
// The mode does not matter for this engine.
func (e *ecc1Bit) Prepare(_ Mode) {
	e.readAccumulator()

	e.guard.withLock(func() {
		fcr := e.transfer.ReadReg(RegNANDFCR)
		fcr |= 1 << (FCR1BitECCStartShift + uint(e.chipSel))
		e.transfer.WriteReg(RegNANDFCR, fcr)
	})
}

// Calculate folds the two 12-bit accumulator halves into 24 bits and
// serializes them little-endian. The value is inverted so an erased
// all-ones page carries a valid codeword.
func (e *ecc1Bit) Calculate(_ []byte) ([]byte, error) {
	v := e.readAccumulator()
	ecc24 := ^((v & 0x0fff) | ((v & 0x0fff0000) >> 4))

	return []byte{byte(ecc24), byte(ecc24 >> 8), byte(ecc24 >> 16)}, nil
}

// Correct compares the stored codeword against the freshly accumulated
// one and classifies the diff. A single-bit data error is flipped in
// place; a single-bit error confined to the codeword needs no data
// change but still counts as one correction.
func (e *ecc1Bit) Correct(data, stored []byte) (int, error) {
	calc, err := e.Calculate(data)
	if err != nil {
		return 0, err
	}

	eccStored := uint32(stored[0]) |
		uint32(stored[1])<<8 |
		uint32(stored[2])<<16
	eccCalc := uint32(calc[0]) |
		uint32(calc[1])<<8 |
		uint32(calc[2])<<16

	diff := eccCalc ^ eccStored
	if diff == 0 {
		return 0, nil
	}

	if ((diff>>12)^diff)&0xfff == 0xfff {
		// The upper half names the failing bit: 3 bits of bit index
		// below 9 bits of byte offset.
		byteOff := int(diff >> 15)
		if byteOff >= len(data) {
			return 0, ErrUncorrectable
		}
		data[byteOff] ^= 1 << ((diff >> 12) & 7)

		return 1, nil
	}

	if diff&(diff-1) == 0 {
		// Single bit error in the codeword itself, data is intact.
		return 1, nil
	}

	return 0, ErrUncorrectable
}
