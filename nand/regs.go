package nand

// Controller register offsets. The same block is shared with the
// async-interface timing registers, which are owned by the platform.
const (
	RegNRCSR    uint32 = 0x00
	RegNANDFCR  uint32 = 0x60
	RegNANDFSR  uint32 = 0x64
	RegNANDF1EC uint32 = 0x70

	Reg4BitECCLoad uint32 = 0xbc
	Reg4BitECC1    uint32 = 0xc0
	Reg4BitECC2    uint32 = 0xc4
	Reg4BitECC3    uint32 = 0xc8
	Reg4BitECC4    uint32 = 0xcc
	RegErrAdd1     uint32 = 0xd0
	RegErrAdd2     uint32 = 0xd4
	RegErrVal1     uint32 = 0xd8
	RegErrVal2     uint32 = 0xdc
)

// Flash control register fields.
const (
	// FCR1BitECCStartShift is the base of the per-chip-select 1-bit ECC
	// start bits: bit 8+cs restarts the accumulator for chip select cs.
	FCR1BitECCStartShift = 8

	// FCR4BitCSShift positions the 2-bit field selecting which chip the
	// shared 4-bit accumulator follows.
	FCR4BitCSShift = 4
	FCR4BitCSMask  = uint32(0x3) << FCR4BitCSShift

	// FCR4BitECCStart arms the 4-bit accumulator for the next transfer.
	FCR4BitECCStart = uint32(1) << 12

	// FCR4BitAddrCalcStart begins the error address/value computation
	// after a non-zero syndrome.
	FCR4BitAddrCalcStart = uint32(1) << 13
)

// Flash status register fields.
const (
	FSRReady = uint32(1) << 0

	FSRECCStateShift = 8
	FSRECCStateMask  = uint32(0xf)

	FSRErrCountShift = 16
	FSRErrCountMask  = uint32(0x3)
)

// Default address bits driving the ALE and CLE strobes. Boards that boot
// from NAND use these; the builder can override them.
const (
	MaskALEDefault uint32 = 0x08
	MaskCLEDefault uint32 = 0x10
)
