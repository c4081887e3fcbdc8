package nand

// Transfer provides register-level access to the controller and to the
// mapped data windows of the attached chips. It is the only way the
// controller touches hardware, so tests substitute a mock or the hwsim
// model.
type Transfer interface {
	// ReadReg reads a 32-bit controller register.
	ReadReg(offset uint32) uint32

	// WriteReg writes a 32-bit controller register.
	WriteReg(offset uint32, value uint32)

	// Window returns the mapped bus window of one chip select.
	Window(chipSel int) Window
}

// Window is the mapped address range of one chip select. Single-byte
// writes at the ALE/CLE mask offsets drive the address and command
// strobes; the repeated transfers move bulk data at the window base.
type Window interface {
	// Write8 performs a single 8-bit write at the given offset within
	// the window.
	Write8(offset uint32, value byte)

	// ReadRep8 fills buf with repeated 8-bit reads at the window base.
	ReadRep8(buf []byte)

	// WriteRep8 drains buf with repeated 8-bit writes at the window
	// base.
	WriteRep8(buf []byte)

	// ReadRep16 fills buf with repeated 16-bit reads. len(buf) must be
	// even.
	ReadRep16(buf []byte)

	// WriteRep16 drains buf with repeated 16-bit writes. len(buf) must
	// be even.
	WriteRep16(buf []byte)

	// ReadRep32 fills buf with repeated 32-bit reads. The buffer
	// address and length must be 4-aligned.
	ReadRep32(buf []byte)

	// WriteRep32 drains buf with repeated 32-bit writes. The buffer
	// address and length must be 4-aligned.
	WriteRep32(buf []byte)
}
