// Package nand implements the controller logic for NAND flash devices
// attached to an asynchronous parallel memory interface. It provides the
// hardware ECC codecs (1-bit Hamming and 4-bit BCH), the spare-area
// layout for both strengths, and the executor that turns abstract
// command/address/data/wait sequences into bus transfers.
//
// The controller talks to the hardware exclusively through the Transfer
// interface, so the same logic runs against real register windows or
// against the software model in the hwsim package.
package nand

import "errors"

// ChunkSize is the number of data bytes covered by one ECC codeword.
const ChunkSize = 512

// Controller-level failure modes. Correctable ECC errors are not errors:
// they are fixed in place and reported as a correction count.
var (
	// ErrUncorrectable reports more errors in a chunk than the active
	// codec can repair.
	ErrUncorrectable = errors.New("nandctrl: uncorrectable ECC error")

	// ErrTimeout reports that a ready or error-locate poll exceeded its
	// bound.
	ErrTimeout = errors.New("nandctrl: timeout")

	// ErrBusy reports that the shared 4-bit ECC accumulator is already
	// claimed by another chip.
	ErrBusy = errors.New("nandctrl: 4-bit ECC engine already in use")

	// ErrInvalidGeometry reports a page/OOB size combination the
	// controller cannot serve.
	ErrInvalidGeometry = errors.New("nandctrl: unsupported page geometry")

	// ErrOutOfRange reports a spare-area section index beyond the chunk
	// count of the current geometry.
	ErrOutOfRange = errors.New("nandctrl: OOB section out of range")
)

// Geometry describes the page organization of an attached chip.
type Geometry struct {
	PageSize int
	OOBSize  int
}

// Chunks returns the number of 512-byte ECC chunks per page.
func (g Geometry) Chunks() int {
	return g.PageSize / ChunkSize
}

// EngineType selects who computes ECC for a chip. Only EngineHost is
// served by this controller; the other selections are delegated to the
// array-management layer.
type EngineType int

const (
	// EngineNone disables ECC entirely. Strongly not advised.
	EngineNone EngineType = iota

	// EngineSoft delegates to a software codec provided by the caller.
	EngineSoft

	// EngineOnDie uses the chip's internal ECC engine.
	EngineOnDie

	// EngineHost uses the controller's hardware accumulators. The
	// strength is chosen by Chip.ECCBits (1 or 4).
	EngineHost
)

// A Chip is one NAND device on the bus. ChipSel, Geometry, Engine and
// ECCBits are filled in by the caller; Configure populates the codec and
// the spare-area layout.
type Chip struct {
	ChipSel  int
	Geometry Geometry
	Engine   EngineType
	ECCBits  int

	codec  Codec
	layout Layout
}

// Codec returns the hardware codec selected for this chip, or nil when
// the engine selection delegates ECC elsewhere.
func (c *Chip) Codec() Codec {
	return c.codec
}

// OOB returns the spare-area layout for this chip. It is nil for the
// 1-bit codec, which fits the platform default layout.
func (c *Chip) OOB() Layout {
	return c.layout
}
