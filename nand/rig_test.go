package nand_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sarchlab/nandctrl/hwsim"
	"github.com/sarchlab/nandctrl/nand"
	"github.com/sarchlab/nandctrl/timing"
)

const readyTimeout = 10 * time.Millisecond

// rig wires a controller to the register-level hardware model with one
// chip behind chip select 0.
type rig struct {
	dev  *hwsim.Device
	sim  *hwsim.Chip
	ctrl *nand.Controller
	chip *nand.Chip
}

func newRig(t *testing.T, geom nand.Geometry, eccBits int) *rig {
	t.Helper()

	dev := hwsim.NewDevice()
	sim := dev.AttachChip(0, geom, 4)

	ctrl := nand.MakeBuilder().
		WithTransfer(dev).
		WithClock(25 * timing.MHz).
		WithNANDChipSels(0).
		Build("Ctrl")

	chip := &nand.Chip{
		ChipSel:  0,
		Geometry: geom,
		Engine:   nand.EngineHost,
		ECCBits:  eccBits,
	}
	require.NoError(t, ctrl.Configure(chip))

	return &rig{dev: dev, sim: sim, ctrl: ctrl, chip: chip}
}

func (r *rig) exec(t *testing.T, instrs ...nand.Instruction) {
	t.Helper()

	err := r.ctrl.Execute(nand.Operation{
		ChipSel:      0,
		Instructions: instrs,
	}, false)
	require.NoError(t, err)
}

// programSetup issues the program-page command with the address pointed
// at the given column of the given page.
func (r *rig) programSetup(t *testing.T, page, column int) {
	t.Helper()

	r.exec(t,
		nand.CommandInstruction{Opcode: 0x80},
		nand.AddressInstruction{Addrs: []byte{
			byte(column), byte(column >> 8), byte(page),
		}},
	)
}

func (r *rig) programConfirm(t *testing.T) {
	t.Helper()

	r.exec(t,
		nand.CommandInstruction{Opcode: 0x10},
		nand.WaitReadyInstruction{Timeout: readyTimeout},
	)
}

// readSetup issues the read-page command sequence and waits for the
// array access to finish.
func (r *rig) readSetup(t *testing.T, page, column int) {
	t.Helper()

	r.exec(t,
		nand.CommandInstruction{Opcode: 0x00},
		nand.AddressInstruction{Addrs: []byte{
			byte(column), byte(column >> 8), byte(page),
		}},
		nand.CommandInstruction{Opcode: 0x30},
		nand.WaitReadyInstruction{Timeout: readyTimeout},
	)
}

func (r *rig) writeData(t *testing.T, buf []byte) {
	t.Helper()
	r.exec(t, nand.DataOutInstruction{Buf: buf})
}

func (r *rig) readData(t *testing.T, buf []byte) {
	t.Helper()
	r.exec(t, nand.DataInInstruction{Buf: buf})
}
