// Package hwsim is a software model of the NAND controller register
// file and the flash chips behind it. It implements nand.Transfer, so
// the controller logic runs against it unchanged. The model reproduces
// the behaviors the driver depends on: accumulating ECC parity over
// data transfers, the error-locate state machine with its
// false-complete window, the downward-counting error addresses, and
// the ready/busy status bit.
package hwsim

import (
	"bytes"

	"github.com/sarchlab/nandctrl/nand"
)

// Device models one controller instance with up to four chips.
type Device struct {
	fcr      uint32
	revision uint32

	readyCountdown int
	hangReady      bool

	stateSeq  []uint32
	stateIdx  int
	numErrors int
	errAdd    [2]uint32
	errVal    [2]uint32

	ecc1 [4]ecc1Acc
	ecc4 ecc4Model

	chips [4]*Chip
}

// NewDevice returns a model reporting controller revision 2.5.
func NewDevice() *Device {
	return &Device{
		revision: 2<<8 | 5,
		stateSeq: []uint32{0},
	}
}

// AttachChip places a flash chip with the given geometry behind a chip
// select.
func (d *Device) AttachChip(chipSel int, geom nand.Geometry, pages int) *Chip {
	c := &Chip{
		pageSize: geom.PageSize,
		oobSize:  geom.OOBSize,
		store:    make([]byte, pages*(geom.PageSize+geom.OOBSize)),
	}
	d.chips[chipSel] = c

	return c
}

// HangReady makes the ready bit stick low, for timeout tests.
func (d *Device) HangReady() {
	d.hangReady = true
}

// ReadReg implements nand.Transfer.
func (d *Device) ReadReg(offset uint32) uint32 {
	switch offset {
	case nand.RegNRCSR:
		return d.revision
	case nand.RegNANDFCR:
		return d.fcr
	case nand.RegNANDFSR:
		return d.readStatus()
	case nand.Reg4BitECC1, nand.Reg4BitECC2,
		nand.Reg4BitECC3, nand.Reg4BitECC4:
		return d.ecc4.readWord(int(offset-nand.Reg4BitECC1) / 4)
	case nand.RegErrAdd1:
		return d.errAdd[0]
	case nand.RegErrAdd2:
		return d.errAdd[1]
	case nand.RegErrVal1:
		return d.errVal[0]
	case nand.RegErrVal2:
		return d.errVal[1]
	}

	if offset >= nand.RegNANDF1EC && offset < nand.RegNANDF1EC+16 {
		cs := int(offset-nand.RegNANDF1EC) / 4
		return d.ecc1[cs].drain()
	}

	return 0
}

// WriteReg implements nand.Transfer.
func (d *Device) WriteReg(offset uint32, value uint32) {
	switch offset {
	case nand.RegNANDFCR:
		d.writeControl(value)
	case nand.Reg4BitECCLoad:
		d.ecc4.load(uint16(value) & 0x3ff)
	}
}

// The start bits are momentary: they trigger on write and read back
// clear, like the hardware strobes they model.
func (d *Device) writeControl(value uint32) {
	for cs := 0; cs < 4; cs++ {
		if value&(1<<(nand.FCR1BitECCStartShift+uint(cs))) != 0 {
			d.ecc1[cs].arm()
		}
	}

	if value&nand.FCR4BitECCStart != 0 {
		cs := int(value&nand.FCR4BitCSMask) >> nand.FCR4BitCSShift
		d.ecc4.arm(cs)
	}

	if value&nand.FCR4BitAddrCalcStart != 0 {
		d.runAddrCalc()
	}

	const persistent = 0xf | nand.FCR4BitCSMask
	d.fcr = value & persistent
}

func (d *Device) readStatus() uint32 {
	var ready uint32
	switch {
	case d.hangReady:
	case d.readyCountdown > 0:
		d.readyCountdown--
	default:
		ready = nand.FSRReady
	}

	state := d.stateSeq[d.stateIdx]
	if d.stateIdx < len(d.stateSeq)-1 {
		d.stateIdx++
	}

	var count uint32
	if d.numErrors > 0 {
		count = uint32(d.numErrors-1) & nand.FSRErrCountMask
	}

	return ready |
		state<<nand.FSRECCStateShift |
		count<<nand.FSRErrCountShift
}

func (d *Device) setLocateStates(states ...uint32) {
	d.stateSeq = states
	d.stateIdx = 0
}

// runAddrCalc resolves the loaded codeword against the data streamed
// since the accumulator was armed. Data-area errors are reported with
// raw address 519-pos so the driver's remap lands on the right buffer
// offset; codeword-area errors are pushed past the chunk boundary.
func (d *Device) runAddrCalc() {
	loaded := d.ecc4.loadedValues()
	data := d.ecc4.chunk()

	if snap := d.ecc4.findByParity(loaded); snap != nil {
		d.locateDataErrors(data, snap.data)
		return
	}

	for _, snap := range d.ecc4.snapshots {
		if bytes.Equal(data, snap.data) {
			d.locateCodewordErrors(snap.parity, loaded)
			return
		}
	}

	// Nothing matches: corruption beyond what the code can resolve.
	d.numErrors = 0
	d.setLocateStates(3, 5, 1)
}

func (d *Device) locateDataErrors(got, want []byte) {
	var positions []int
	for i := range want {
		if i < len(got) && got[i] != want[i] {
			positions = append(positions, i)
		}
	}

	switch {
	case len(positions) == 0:
		d.numErrors = 0
		d.setLocateStates(3, 5, 0)
	case len(positions) > 4:
		d.numErrors = 0
		d.setLocateStates(3, 5, 5, 1)
	default:
		d.errAdd = [2]uint32{}
		d.errVal = [2]uint32{}
		for i, pos := range positions {
			d.reportError(i, uint32(519-pos), uint32(got[pos]^want[pos]))
		}
		d.numErrors = len(positions)
		d.setLocateStates(3, 5, 5, 2)
	}
}

func (d *Device) locateCodewordErrors(want, got [8]uint16) {
	var lanes []int
	for k := range want {
		if want[k] != got[k] {
			lanes = append(lanes, k)
		}
	}

	if len(lanes) == 0 || len(lanes) > 4 {
		d.numErrors = 0
		d.setLocateStates(3, 5, 1)
		return
	}

	d.errAdd = [2]uint32{}
	d.errVal = [2]uint32{}
	for i, k := range lanes {
		// Raw address 7-k remaps to 512+k, inside the ECC bytes.
		d.reportError(i, uint32(7-k), uint32(want[k]^got[k])&0xff)
	}
	d.numErrors = len(lanes)
	d.setLocateStates(3, 5, 5, 2)
}

func (d *Device) reportError(index int, addr, value uint32) {
	pair := index / 2
	if index%2 == 1 {
		d.errAdd[pair] |= addr << 16
		d.errVal[pair] |= value << 16
	} else {
		d.errAdd[pair] = addr
		d.errVal[pair] = value
	}
}

// Window implements nand.Transfer.
func (d *Device) Window(chipSel int) nand.Window {
	return window{d: d, cs: chipSel}
}

func (d *Device) feed(cs int, b byte) {
	d.ecc1[cs].feed(b)
	if d.ecc4.armed && d.ecc4.cs == cs {
		d.ecc4.feed(b)
	}
}

func (d *Device) dataRead(cs int, buf []byte) {
	chip := d.chips[cs]
	chip.resolveAddress()

	n := copy(buf, chip.store[chip.offset:])
	chip.offset += n

	for _, b := range buf {
		d.feed(cs, b)
	}
}

func (d *Device) dataWrite(cs int, buf []byte) {
	chip := d.chips[cs]
	chip.resolveAddress()

	n := copy(chip.store[chip.offset:], buf)
	chip.offset += n

	for _, b := range buf {
		d.feed(cs, b)
	}
}

type window struct {
	d  *Device
	cs int
}

func (w window) Write8(offset uint32, value byte) {
	switch offset {
	case nand.MaskCLEDefault:
		w.d.chips[w.cs].command(w.d, value)
	case nand.MaskALEDefault:
		w.d.chips[w.cs].addressCycle(value)
	default:
		w.d.dataWrite(w.cs, []byte{value})
	}
}

func (w window) ReadRep8(buf []byte)   { w.d.dataRead(w.cs, buf) }
func (w window) ReadRep16(buf []byte)  { w.d.dataRead(w.cs, buf) }
func (w window) ReadRep32(buf []byte)  { w.d.dataRead(w.cs, buf) }
func (w window) WriteRep8(buf []byte)  { w.d.dataWrite(w.cs, buf) }
func (w window) WriteRep16(buf []byte) { w.d.dataWrite(w.cs, buf) }
func (w window) WriteRep32(buf []byte) { w.d.dataWrite(w.cs, buf) }

// Chip is the flash array behind one chip select. The store holds every
// page's data and spare area back to back.
type Chip struct {
	pageSize int
	oobSize  int
	store    []byte

	addr        []byte
	addrPending bool
	offset      int
}

// Page returns the data+spare bytes of one page for direct test setup
// and inspection.
func (c *Chip) Page(index int) []byte {
	stride := c.pageSize + c.oobSize
	return c.store[index*stride : (index+1)*stride]
}

func (c *Chip) command(d *Device, opcode byte) {
	switch opcode {
	case 0x00, 0x80: // read / program setup
		c.addr = nil
		c.addrPending = true
	case 0x30: // read confirm
		c.resolveAddress()
		d.readyCountdown = 2
	case 0x10: // program confirm
		d.readyCountdown = 2
	case 0xff: // reset
		d.readyCountdown = 1
	}
}

func (c *Chip) addressCycle(a byte) {
	c.addr = append(c.addr, a)
}

func (c *Chip) resolveAddress() {
	if !c.addrPending {
		return
	}
	c.addrPending = false

	var column, row int
	switch {
	case len(c.addr) >= 2:
		column = int(c.addr[0]) | int(c.addr[1])<<8
	case len(c.addr) == 1:
		column = int(c.addr[0])
	}
	for i, a := range c.addr[2:] {
		row |= int(a) << (8 * i)
	}

	c.offset = row*(c.pageSize+c.oobSize) + column
}
