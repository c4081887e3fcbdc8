package datarecording

import "github.com/rs/xid"

const busTraceTable = "bus_trace"

// InstructionEntry is the record of one executed bus instruction.
type InstructionEntry struct {
	ID         string
	ChipSel    int
	Kind       string
	NumBytes   int
	Width      int
	DurationNS int64
}

// BusRecorder writes executed bus instructions through a DataRecorder
// backend.
type BusRecorder struct {
	backend DataRecorder
}

// NewBusRecorder creates a BusRecorder and its table on the backend.
func NewBusRecorder(backend DataRecorder) *BusRecorder {
	backend.CreateTable(busTraceTable, InstructionEntry{})

	return &BusRecorder{backend: backend}
}

// Record stores one entry, assigning an ID if the caller left it empty.
func (r *BusRecorder) Record(entry InstructionEntry) {
	if entry.ID == "" {
		entry.ID = xid.New().String()
	}

	r.backend.InsertData(busTraceTable, entry)
}

// Flush forces buffered entries out to the database.
func (r *BusRecorder) Flush() {
	r.backend.Flush()
}
