package nand

import (
	"fmt"

	"github.com/sarchlab/nandctrl/datarecording"
	"github.com/sarchlab/nandctrl/timing"
)

// A Controller drives one NAND flash controller instance: up to four
// chip selects sharing one register block, one 4-bit ECC accumulator,
// and one async-interface timing configuration per chip select.
type Controller struct {
	name     string
	transfer Transfer
	clock    timing.Freq

	validator timing.Validator
	committer timing.Committer
	recorder  *datarecording.BusRecorder

	maskALE uint32
	maskCLE uint32

	guard hwGuard
}

// Name returns the name of the controller.
func (c *Controller) Name() string {
	return c.name
}

// Revision reads the controller revision register.
func (c *Controller) Revision() (major, minor int) {
	v := c.transfer.ReadReg(RegNRCSR)
	return int(v>>8) & 0xff, int(v) & 0xff
}

// Configure attaches a chip: it selects the codec and spare-area layout
// matching the chip's engine selection and geometry. Engine selections
// other than EngineHost are delegated to the array-management layer and
// leave the chip without a codec. A chip configured for the 4-bit codec
// holds the shared accumulator until Release.
func (c *Controller) Configure(chip *Chip) error {
	if chip.ChipSel < 0 || chip.ChipSel > 3 {
		return fmt.Errorf("nandctrl: chip select %d out of range",
			chip.ChipSel)
	}

	switch chip.Engine {
	case EngineNone, EngineSoft, EngineOnDie:
		chip.codec = nil
		chip.layout = nil
		return nil
	case EngineHost:
	default:
		return fmt.Errorf("nandctrl: unknown ECC engine selection %d",
			chip.Engine)
	}

	switch chip.ECCBits {
	case 4:
		return c.configure4Bit(chip)
	case 1:
		chip.codec = &ecc1Bit{
			transfer: c.transfer,
			guard:    &c.guard,
			chipSel:  chip.ChipSel,
		}
		// The default spare-area layout of the array layer fits three
		// codeword bytes per chunk, so no override is needed.
		chip.layout = nil
		return nil
	default:
		return fmt.Errorf("nandctrl: unsupported ECC strength %d",
			chip.ECCBits)
	}
}

func (c *Controller) configure4Bit(chip *Chip) error {
	layout, err := LayoutFor(chip.Geometry)
	if err != nil {
		return err
	}

	if err := c.guard.claimECC4(); err != nil {
		return err
	}

	chip.codec = &ecc4Bit{
		transfer: c.transfer,
		guard:    &c.guard,
		chipSel:  chip.ChipSel,
	}
	chip.layout = layout

	return nil
}

// Release detaches a chip and returns the 4-bit accumulator to the pool
// if the chip held it.
func (c *Controller) Release(chip *Chip) {
	if _, held := chip.codec.(*ecc4Bit); held {
		c.guard.releaseECC4()
	}

	chip.codec = nil
	chip.layout = nil
}

// SetupInterface derives the cycle counts for the given device timing
// requirements, validates them against the hardware ranges, and commits
// them for the chip select. A probe-only call validates without
// committing, so capability checks never disturb a working
// configuration.
func (c *Controller) SetupInterface(
	chipSel int,
	probeOnly bool,
	sdr timing.SDRTimings,
) (timing.CSTimings, error) {
	cycles := timing.Solve(sdr, c.clock)

	if err := c.validator.Check(cycles); err != nil {
		return timing.CSTimings{}, err
	}

	if probeOnly || c.committer == nil {
		return cycles, nil
	}

	if err := c.committer.Commit(chipSel, cycles); err != nil {
		return timing.CSTimings{}, err
	}

	return cycles, nil
}
