package nand

import (
	"fmt"
	"log"
	"reflect"
	"time"
	"unsafe"

	"github.com/sarchlab/nandctrl/datarecording"
)

const readyPollInterval = 5 * time.Microsecond

// Width is a bus transfer granularity in bits.
type Width int

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// transferWidth picks the widest transfer the buffer allows. Misaligned
// wide transfers must never be attempted, so any odd address or length
// forces byte transfers and anything not 4-aligned falls back to 16-bit.
func transferWidth(addr uintptr, n int, force8 bool) Width {
	alignment := (uint64(addr) | uint64(n)) & 3

	switch {
	case force8 || alignment&1 != 0:
		return Width8
	case alignment != 0:
		return Width16
	default:
		return Width32
	}
}

func bufAddr(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}

// Execute runs the operation's instructions in order against the
// operation's chip select. With checkOnly set it is a capability probe:
// it reports success without touching hardware.
func (c *Controller) Execute(op Operation, checkOnly bool) error {
	if checkOnly {
		return nil
	}

	window := c.transfer.Window(op.ChipSel)

	for _, instr := range op.Instructions {
		if err := c.execInstruction(window, op.ChipSel, instr); err != nil {
			return err
		}
	}

	return nil
}

func (c *Controller) execInstruction(
	window Window,
	chipSel int,
	instr Instruction,
) error {
	start := time.Now()
	entry := datarecording.InstructionEntry{ChipSel: chipSel}

	switch in := instr.(type) {
	case CommandInstruction:
		window.Write8(c.maskCLE, in.Opcode)
		entry.Kind = "cmd"
		entry.NumBytes = 1
	case AddressInstruction:
		for _, a := range in.Addrs {
			window.Write8(c.maskALE, a)
		}
		entry.Kind = "addr"
		entry.NumBytes = len(in.Addrs)
	case DataInInstruction:
		entry.Kind = "data_in"
		entry.NumBytes = len(in.Buf)
		entry.Width = int(c.dataIn(window, in.Buf, in.Force8Bit))
	case DataOutInstruction:
		entry.Kind = "data_out"
		entry.NumBytes = len(in.Buf)
		entry.Width = int(c.dataOut(window, in.Buf, in.Force8Bit))
	case WaitReadyInstruction:
		entry.Kind = "wait_rdy"
		if err := c.waitReady(in.Timeout); err != nil {
			return err
		}
	default:
		log.Panicf("cannot execute instruction of type %s",
			reflect.TypeOf(instr))
	}

	if d := instr.PostDelay(); d > 0 {
		// Drain read so the posted write reaches the device before the
		// delay starts counting.
		c.transfer.ReadReg(RegNRCSR)
		time.Sleep(d)
	}

	if c.recorder != nil {
		entry.DurationNS = time.Since(start).Nanoseconds()
		c.recorder.Record(entry)
	}

	return nil
}

func (c *Controller) dataIn(w Window, buf []byte, force8 bool) Width {
	width := transferWidth(bufAddr(buf), len(buf), force8)

	switch width {
	case Width8:
		w.ReadRep8(buf)
	case Width16:
		w.ReadRep16(buf)
	default:
		w.ReadRep32(buf)
	}

	return width
}

func (c *Controller) dataOut(w Window, buf []byte, force8 bool) Width {
	width := transferWidth(bufAddr(buf), len(buf), force8)

	switch width {
	case Width8:
		w.WriteRep8(buf)
	case Width16:
		w.WriteRep16(buf)
	default:
		w.WriteRep32(buf)
	}

	return width
}

func (c *Controller) waitReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		if c.transfer.ReadReg(RegNANDFSR)&FSRReady != 0 {
			return nil
		}
		if time.Now().After(deadline) {
			break
		}
		time.Sleep(readyPollInterval)
	}

	// One final sample so a ready flip racing the deadline still wins.
	if c.transfer.ReadReg(RegNANDFSR)&FSRReady != 0 {
		return nil
	}

	return fmt.Errorf("%w: ready bit not set within %s", ErrTimeout, timeout)
}
