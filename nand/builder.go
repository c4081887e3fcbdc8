package nand

import (
	"log"

	"github.com/sarchlab/nandctrl/datarecording"
	"github.com/sarchlab/nandctrl/timing"
)

// Builder assembles Controllers.
type Builder struct {
	transfer  Transfer
	clock     timing.Freq
	validator timing.Validator
	committer timing.Committer
	recorder  *datarecording.BusRecorder

	maskALE uint32
	maskCLE uint32

	nandChipSels []int
}

// MakeBuilder returns a Builder with boot-capable ALE/CLE masks, a
// 100 MHz bus clock, and the default hardware-range timing validator.
func MakeBuilder() Builder {
	return Builder{
		clock:     100 * timing.MHz,
		validator: timing.RangeValidator{Limits: timing.DefaultLimits},
		maskALE:   MaskALEDefault,
		maskCLE:   MaskCLEDefault,
	}
}

// WithTransfer sets the register transfer collaborator. Required.
func (b Builder) WithTransfer(t Transfer) Builder {
	b.transfer = t
	return b
}

// WithClock sets the bus clock the timing solver divides against.
func (b Builder) WithClock(f timing.Freq) Builder {
	b.clock = f
	return b
}

// WithTimingValidator overrides the hardware-range validation step.
func (b Builder) WithTimingValidator(v timing.Validator) Builder {
	b.validator = v
	return b
}

// WithTimingCommitter sets the collaborator that programs validated
// cycle counts into the async-interface registers. Without one,
// SetupInterface validates but never commits.
func (b Builder) WithTimingCommitter(cm timing.Committer) Builder {
	b.committer = cm
	return b
}

// WithRecorder attaches a bus-instruction recorder.
func (b Builder) WithRecorder(r *datarecording.BusRecorder) Builder {
	b.recorder = r
	return b
}

// WithALEMask overrides the address-strobe offset within a chip window.
func (b Builder) WithALEMask(mask uint32) Builder {
	b.maskALE = mask
	return b
}

// WithCLEMask overrides the command-strobe offset within a chip window.
func (b Builder) WithCLEMask(mask uint32) Builder {
	b.maskCLE = mask
	return b
}

// WithNANDChipSels lists the chip selects to switch into NAND mode when
// the controller is built.
func (b Builder) WithNANDChipSels(chipSels ...int) Builder {
	b.nandChipSels = append(b.nandChipSels, chipSels...)
	return b
}

// Build builds a new Controller and puts the listed chip selects into
// NAND mode.
func (b Builder) Build(name string) *Controller {
	if b.transfer == nil {
		log.Panic("nandctrl: controller built without a transfer")
	}

	c := &Controller{
		name:      name,
		transfer:  b.transfer,
		clock:     b.clock,
		validator: b.validator,
		committer: b.committer,
		recorder:  b.recorder,
		maskALE:   b.maskALE,
		maskCLE:   b.maskCLE,
	}

	for _, cs := range b.nandChipSels {
		c.guard.withLock(func() {
			fcr := c.transfer.ReadReg(RegNANDFCR)
			fcr |= 1 << uint(cs)
			c.transfer.WriteReg(RegNANDFCR, fcr)
		})
	}

	return c
}
