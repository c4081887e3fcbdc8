package hwsim

import "github.com/sarchlab/nandctrl/nand"

// ecc1Acc models one per-chip-select 1-bit parity accumulator. For
// every set data bit at 12-bit position p (9 bits of byte offset, 3 of
// bit index) it folds p into one 12-bit half and ^p into the other, so
// a single flipped bit later shows up as its own position in the
// codeword diff.
type ecc1Acc struct {
	armed bool
	p     uint16
	np    uint16
	n     int
}

func (a *ecc1Acc) arm() {
	a.armed = true
	a.p, a.np, a.n = 0, 0, 0
}

func (a *ecc1Acc) feed(b byte) {
	if !a.armed {
		return
	}
	for j := 0; j < 8; j++ {
		if b&(1<<uint(j)) != 0 {
			pos := uint16(a.n<<3 | j)
			a.p ^= pos
			a.np ^= ^pos & 0xfff
		}
	}
	a.n++
}

// drain returns the accumulator value and clears it, as a hardware
// register read does.
func (a *ecc1Acc) drain() uint32 {
	v := uint32(a.np&0xfff) | uint32(a.p&0xfff)<<16
	a.p, a.np, a.n = 0, 0, 0
	a.armed = false

	return v
}

// ecc4Model is the shared 4-bit accumulator. It is not a BCH engine:
// it remembers the chunks it produced parity for and locates errors by
// comparison, which reproduces the register-level contract the driver
// sees without the field arithmetic.
type ecc4Model struct {
	armed bool
	cs    int

	data   []byte
	loaded []uint16

	snapshots []ecc4Snapshot
}

type ecc4Snapshot struct {
	parity [8]uint16
	data   []byte
}

func (m *ecc4Model) arm(cs int) {
	m.armed = true
	m.cs = cs
	m.data = nil
	m.loaded = nil
}

func (m *ecc4Model) feed(b byte) {
	m.data = append(m.data, b)
}

func (m *ecc4Model) load(v uint16) {
	m.loaded = append(m.loaded, v)
}

func (m *ecc4Model) chunk() []byte {
	if len(m.data) > nand.ChunkSize {
		return m.data[:nand.ChunkSize]
	}
	return m.data
}

// parity folds the chunk into eight 10-bit lanes, one per byte-index
// residue class: 8 bits of XOR fold below 2 bits of byte sum. Linear
// enough that the all-zero chunk packs to an all-zero codeword.
func (m *ecc4Model) parity() [8]uint16 {
	var xor [8]uint8
	var sum [8]uint32

	for i, b := range m.chunk() {
		xor[i%8] ^= b
		sum[i%8] += uint32(b)
	}

	var lanes [8]uint16
	for k := range lanes {
		lanes[k] = uint16(xor[k]) | uint16(sum[k]&0x3)<<8
	}
	return lanes
}

// loadedValues reverses the load order: the driver writes value 7
// first.
func (m *ecc4Model) loadedValues() [8]uint16 {
	var v [8]uint16
	if len(m.loaded) < 8 {
		return v
	}
	recent := m.loaded[len(m.loaded)-8:]
	for i, lv := range recent {
		v[7-i] = lv
	}
	return v
}

// readWord returns one accumulator register. Before a codeword is
// loaded the registers expose the parity of the streamed chunk; after
// loading they expose the syndrome against it. Reading the last parity
// word snapshots the chunk, standing in for the hardware state the
// locate step consults.
func (m *ecc4Model) readWord(index int) uint32 {
	lanes := m.parity()

	if len(m.loaded) >= 8 {
		loaded := m.loadedValues()
		for k := range lanes {
			lanes[k] ^= loaded[k]
		}
	} else if index == 3 && m.armed {
		m.snapshot(lanes)
	}

	return uint32(lanes[2*index]&0x3ff) |
		uint32(lanes[2*index+1]&0x3ff)<<16
}

func (m *ecc4Model) snapshot(parity [8]uint16) {
	data := make([]byte, len(m.chunk()))
	copy(data, m.chunk())

	m.snapshots = append(m.snapshots, ecc4Snapshot{
		parity: parity,
		data:   data,
	})
}

func (m *ecc4Model) findByParity(parity [8]uint16) *ecc4Snapshot {
	for i := range m.snapshots {
		if m.snapshots[i].parity == parity {
			return &m.snapshots[i]
		}
	}
	return nil
}
