package nand

import "time"

// An Instruction is one primitive step of a bus operation. Concrete
// instruction types are dispatched by the executor with a type switch.
type Instruction interface {
	// PostDelay is the settling time required after the instruction
	// completes. Zero means none.
	PostDelay() time.Duration
}

// CommandInstruction latches one opcode byte through the CLE strobe.
type CommandInstruction struct {
	Opcode byte
	Delay  time.Duration
}

func (i CommandInstruction) PostDelay() time.Duration { return i.Delay }

// AddressInstruction latches a sequence of address cycles through the
// ALE strobe.
type AddressInstruction struct {
	Addrs []byte
	Delay time.Duration
}

func (i AddressInstruction) PostDelay() time.Duration { return i.Delay }

// DataInInstruction reads len(Buf) bytes from the chip. Force8Bit
// disables the wide-transfer optimization.
type DataInInstruction struct {
	Buf       []byte
	Force8Bit bool
	Delay     time.Duration
}

func (i DataInInstruction) PostDelay() time.Duration { return i.Delay }

// DataOutInstruction writes len(Buf) bytes to the chip. Force8Bit
// disables the wide-transfer optimization.
type DataOutInstruction struct {
	Buf       []byte
	Force8Bit bool
	Delay     time.Duration
}

func (i DataOutInstruction) PostDelay() time.Duration { return i.Delay }

// WaitReadyInstruction polls the ready status bit until it sets or
// Timeout elapses.
type WaitReadyInstruction struct {
	Timeout time.Duration
	Delay   time.Duration
}

func (i WaitReadyInstruction) PostDelay() time.Duration { return i.Delay }

// An Operation is an ordered instruction list executed against one chip
// select.
type Operation struct {
	ChipSel      int
	Instructions []Instruction
}
