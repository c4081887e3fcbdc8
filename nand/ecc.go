package nand

import "sync"

// Mode tells a codec whether the next transfer it accumulates over is a
// page read or a page write. The 4-bit codec behaves differently on the
// two paths, so the caller must arm the accumulator with the right mode
// before every data transfer and must not interleave another chunk's
// transfer before collecting the result.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

// A Codec computes and corrects ECC over one 512-byte chunk.
//
// The contract follows the hardware: Prepare drains and re-arms the
// accumulator, the chunk is then streamed through the executor, and
// Calculate or Correct consumes the accumulated state. Correct fixes
// correctable errors in place and returns the number of corrections
// applied to the data buffer.
type Codec interface {
	Prepare(mode Mode)
	Calculate(data []byte) ([]byte, error)
	Correct(data, stored []byte) (int, error)

	// Bytes is the codeword length in the spare area.
	Bytes() int

	// Strength is the number of correctable errors per chunk.
	Strength() int
}

// hwGuard serializes access to controller state shared across chip
// selects: the flash control register and the single 4-bit ECC
// accumulator. The 1-bit accumulators are per chip select, but the
// control register holding their start bits is not.
type hwGuard struct {
	mu          sync.Mutex
	ecc4Claimed bool
}

// withLock runs f while holding the shared-register lock. Used for
// read-modify-write cycles on the control register only; data transfers
// run outside the lock.
func (g *hwGuard) withLock(f func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f()
}

// claimECC4 takes exclusive ownership of the 4-bit accumulator.
func (g *hwGuard) claimECC4() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ecc4Claimed {
		return ErrBusy
	}
	g.ecc4Claimed = true

	return nil
}

func (g *hwGuard) releaseECC4() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ecc4Claimed = false
}
