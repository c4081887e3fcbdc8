package nand

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("Executor", func() {
	var (
		mockCtrl *gomock.Controller
		transfer *MockTransfer
		window   *MockWindow
		c        *Controller
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		transfer = NewMockTransfer(mockCtrl)
		window = NewMockWindow(mockCtrl)
		c = MakeBuilder().
			WithTransfer(transfer).
			Build("Ctrl")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should not touch hardware on a capability probe", func() {
		op := Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				CommandInstruction{Opcode: 0x70},
			},
		}

		err := c.Execute(op, true)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should latch commands through the CLE strobe", func() {
		transfer.EXPECT().Window(2).Return(window)
		window.EXPECT().Write8(MaskCLEDefault, byte(0x70))

		err := c.Execute(Operation{
			ChipSel: 2,
			Instructions: []Instruction{
				CommandInstruction{Opcode: 0x70},
			},
		}, false)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should latch each address cycle through the ALE strobe", func() {
		transfer.EXPECT().Window(0).Return(window)
		gomock.InOrder(
			window.EXPECT().Write8(MaskALEDefault, byte(0x12)),
			window.EXPECT().Write8(MaskALEDefault, byte(0x34)),
			window.EXPECT().Write8(MaskALEDefault, byte(0x56)),
		)

		err := c.Execute(Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				AddressInstruction{Addrs: []byte{0x12, 0x34, 0x56}},
			},
		}, false)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should use 32-bit transfers for aligned buffers", func() {
		buf := make([]byte, 64)
		transfer.EXPECT().Window(0).Return(window)
		window.EXPECT().WriteRep32(buf)

		err := c.Execute(Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				DataOutInstruction{Buf: buf},
			},
		}, false)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should honor the 8-bit override", func() {
		buf := make([]byte, 64)
		transfer.EXPECT().Window(0).Return(window)
		window.EXPECT().ReadRep8(buf)

		err := c.Execute(Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				DataInInstruction{Buf: buf, Force8Bit: true},
			},
		}, false)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should fall back to byte transfers for odd lengths", func() {
		buf := make([]byte, 63)
		transfer.EXPECT().Window(0).Return(window)
		window.EXPECT().ReadRep8(buf)

		err := c.Execute(Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				DataInInstruction{Buf: buf},
			},
		}, false)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should drain posted writes before a settling delay", func() {
		transfer.EXPECT().Window(0).Return(window)
		window.EXPECT().Write8(MaskCLEDefault, byte(0xff))
		transfer.EXPECT().ReadReg(RegNRCSR).Return(uint32(0))

		err := c.Execute(Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				CommandInstruction{Opcode: 0xff, Delay: time.Microsecond},
			},
		}, false)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should wait until the ready bit sets", func() {
		transfer.EXPECT().Window(0).Return(window)
		gomock.InOrder(
			transfer.EXPECT().ReadReg(RegNANDFSR).Return(uint32(0)),
			transfer.EXPECT().ReadReg(RegNANDFSR).Return(FSRReady),
		)

		err := c.Execute(Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				WaitReadyInstruction{Timeout: time.Second},
			},
		}, false)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should report a timeout when ready never sets", func() {
		transfer.EXPECT().Window(0).Return(window)
		transfer.EXPECT().ReadReg(RegNANDFSR).Return(uint32(0)).AnyTimes()

		err := c.Execute(Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				WaitReadyInstruction{Timeout: time.Millisecond},
			},
		}, false)

		Expect(err).To(MatchError(ErrTimeout))
	})

	It("should stop the operation at the first failing instruction", func() {
		transfer.EXPECT().Window(0).Return(window)
		transfer.EXPECT().ReadReg(RegNANDFSR).Return(uint32(0)).AnyTimes()

		err := c.Execute(Operation{
			ChipSel: 0,
			Instructions: []Instruction{
				WaitReadyInstruction{Timeout: time.Millisecond},
				CommandInstruction{Opcode: 0x70},
			},
		}, false)

		Expect(err).To(MatchError(ErrTimeout))
	})
})

var _ = Describe("Builder", func() {
	var (
		mockCtrl *gomock.Controller
		transfer *MockTransfer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		transfer = NewMockTransfer(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should panic without a transfer", func() {
		Expect(func() {
			MakeBuilder().Build("Ctrl")
		}).To(Panic())
	})

	It("should put the listed chip selects into NAND mode", func() {
		gomock.InOrder(
			transfer.EXPECT().ReadReg(RegNANDFCR).Return(uint32(0)),
			transfer.EXPECT().WriteReg(RegNANDFCR, uint32(1)),
			transfer.EXPECT().ReadReg(RegNANDFCR).Return(uint32(1)),
			transfer.EXPECT().WriteReg(RegNANDFCR, uint32(1|1<<3)),
		)

		c := MakeBuilder().
			WithTransfer(transfer).
			WithNANDChipSels(0, 3).
			Build("Ctrl")

		Expect(c.Name()).To(Equal("Ctrl"))
	})
})
