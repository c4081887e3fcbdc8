package nand

import (
	"fmt"
	"time"

	"github.com/sarchlab/nandctrl/nand/internal/eccpack"
)

const (
	// eccStateSettleTimeout bounds the wait for the error-locate state
	// machine to leave its false-complete window. The state field reads
	// a final-looking value immediately after the start bit is set, so
	// polling must not begin until it has climbed past 4.
	eccStateSettleTimeout = 100 * time.Microsecond

	// errorLocateTimeout bounds the poll for locate completion.
	errorLocateTimeout = time.Millisecond
)

// ecc4Bit is the syndrome-based 4-bit BCH hardware codec. The
// accumulator is a single resource shared by every chip select, so the
// guard grants it to at most one configured chip at a time.
type ecc4Bit struct {
	transfer Transfer
	guard    *hwGuard
	chipSel  int

	readMode bool
}

func (e *ecc4Bit) Bytes() int    { return 10 }
func (e *ecc4Bit) Strength() int { return 4 }

// Prepare drains the accumulator and points it at this chip for the
// next transfer. The read/write mode decides what Calculate does
// afterwards.
func (e *ecc4Bit) Prepare(mode Mode) {
	e.transfer.ReadReg(Reg4BitECC1)

	e.guard.withLock(func() {
		fcr := e.transfer.ReadReg(RegNANDFCR)
		fcr &^= FCR4BitCSMask
		fcr |= uint32(e.chipSel)<<FCR4BitCSShift | FCR4BitECCStart
		e.transfer.WriteReg(RegNANDFCR, fcr)

		e.readMode = mode == ModeRead
	})
}

func (e *ecc4Bit) readSyndrome() [4]uint32 {
	const mask = 0x03ff03ff

	return [4]uint32{
		e.transfer.ReadReg(Reg4BitECC1) & mask,
		e.transfer.ReadReg(Reg4BitECC2) & mask,
		e.transfer.ReadReg(Reg4BitECC3) & mask,
		e.transfer.ReadReg(Reg4BitECC4) & mask,
	}
}

// Calculate returns the packed codeword of the chunk just written. On
// the read path it only terminates the accumulation with a dummy read
// and returns no codeword: Correct consumes the live accumulator state,
// so the preceding transfer and the correction must not be interleaved
// with another chunk.
func (e *ecc4Bit) Calculate(_ []byte) ([]byte, error) {
	if e.readMode {
		e.transfer.ReadReg(Reg4BitECC1)
		return nil, nil
	}

	code := eccpack.PackWords(e.readSyndrome())

	return code[:], nil
}

// Correct reloads the stored codeword into the comparison register,
// reads the syndrome, and if it is non-zero drives the hardware error
// locator. Detected errors whose remapped address falls inside the data
// chunk are XOR-corrected in place; addresses beyond it sit in the ECC
// bytes themselves and are left alone.
func (e *ecc4Bit) Correct(data, stored []byte) (int, error) {
	if len(stored) < 10 {
		return 0, fmt.Errorf("nandctrl: short 4-bit codeword (%d bytes)",
			len(stored))
	}

	var code [10]byte
	copy(code[:], stored)
	values := eccpack.Unpack(code)

	for i := 7; i >= 0; i-- {
		e.transfer.WriteReg(Reg4BitECCLoad, uint32(values[i]))
	}

	// Allow time for syndrome calculation before reading it.
	e.transfer.ReadReg(RegNANDFSR)

	syndrome := e.readSyndrome()
	if syndrome[0]|syndrome[1]|syndrome[2]|syndrome[3] == 0 {
		return 0, nil
	}

	// Clear any previous address calculation, then start a new one.
	e.transfer.ReadReg(RegErrAdd1)
	e.transfer.WriteReg(RegNANDFCR,
		e.transfer.ReadReg(RegNANDFCR)|FCR4BitAddrCalcStart)

	e.settleLocateState()

	numErrors, err := e.waitLocateDone()
	if err != nil || numErrors == 0 {
		return 0, err
	}

	return e.applyCorrections(data, numErrors), nil
}

// settleLocateState waits out the false-complete window: the state
// field must climb to at least 4 (working) before completion polling is
// meaningful.
func (e *ecc4Bit) settleLocateState() {
	deadline := time.Now().Add(eccStateSettleTimeout)
	for e.eccState() < 4 && time.Now().Before(deadline) {
		time.Sleep(time.Microsecond)
	}
}

func (e *ecc4Bit) eccState() uint32 {
	return (e.transfer.ReadReg(RegNANDFSR) >> FSRECCStateShift) &
		FSRECCStateMask
}

func (e *ecc4Bit) waitLocateDone() (int, error) {
	deadline := time.Now().Add(errorLocateTimeout)

	for {
		fsr := e.transfer.ReadReg(RegNANDFSR)

		switch (fsr >> FSRECCStateShift) & FSRECCStateMask {
		case 0:
			// No error after a non-zero syndrome. Should not happen;
			// drain and report nothing to correct.
			e.transfer.ReadReg(RegErrVal1)
			return 0, nil
		case 1:
			// Five or more errors detected. The status does not say
			// which, so nothing is salvageable.
			e.transfer.ReadReg(RegErrVal1)
			return 0, ErrUncorrectable
		case 2, 3:
			return 1 + int((fsr>>FSRErrCountShift)&FSRErrCountMask), nil
		default:
			if time.Now().After(deadline) {
				return 0, fmt.Errorf(
					"%w: error locate did not complete", ErrTimeout)
			}
		}
	}
}

func (e *ecc4Bit) applyCorrections(data []byte, numErrors int) int {
	corrected := 0

	for i := 0; i < numErrors; i++ {
		var addr, value uint32
		if i > 1 {
			addr = e.transfer.ReadReg(RegErrAdd2)
			value = e.transfer.ReadReg(RegErrVal2)
		} else {
			addr = e.transfer.ReadReg(RegErrAdd1)
			value = e.transfer.ReadReg(RegErrVal1)
		}
		if i&1 == 1 {
			addr >>= 16
			value >>= 16
		}

		// The accumulator counts addresses downward from the end of
		// the codeword; 519-addr is the empirically confirmed remap to
		// buffer indexing. Remapped addresses past the chunk fall in
		// the ECC bytes and are not applied.
		pos := 519 - int(addr&0x3ff)
		if pos < ChunkSize && pos >= 0 {
			data[pos] ^= byte(value)
			corrected++
		}
	}

	return corrected
}
