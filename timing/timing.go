// Package timing converts device datasheet timing requirements into
// cycle counts for the async-interface chip-select configuration.
package timing

import (
	"errors"
	"fmt"
)

// Board-level signal margins added on top of the device requirements.
const (
	maxInputSetupPS = 3000
	maxInputHoldPS  = 1600
)

// SDRTimings are the device's single-data-rate timing requirements.
// All values are picoseconds; Min/Max suffixes follow the datasheet.
type SDRTimings struct {
	TCLRMin int64
	TREAMax int64
	TRPMin  int64
	TCEAMax int64
	TCHZMax int64
	TRCMin  int64
	TRHZMax int64

	TWPMin  int64
	TCLSMin int64
	TALSMin int64
	TCSMin  int64
	TDSMin  int64
	TCLHMin int64
	TALHMin int64
	TCHMin  int64
	TDHMin  int64
	TWCMin  int64
}

// CSTimings are the solved per-chip-select cycle counts.
type CSTimings struct {
	RSetup  uint32
	RStrobe uint32
	RHold   uint32
	TA      uint32
	WSetup  uint32
	WStrobe uint32
	WHold   uint32
}

// toCycles converts a picosecond requirement to cycles of the given
// period. The picosecond value is truncated to nanoseconds first; both
// steps must stay integer divisions to reproduce the hardware tables.
func toCycles(ps, periodNS int64) int64 {
	return (ps/1000 + periodNS - 1) / periodNS
}

func clampCycles(v int64) uint32 {
	if v > 0 {
		return uint32(v)
	}
	return 0
}

// Solve derives a consistent cycle-count set for the requirements at
// the given bus clock. Each term is solved individually, then every
// additive group is topped up by incrementing its last term until the
// group meets its own minimum. Solve is pure; range validation happens
// separately.
func Solve(sdr SDRTimings, clock Freq) CSTimings {
	periodNS := clock.PeriodNS()

	var t CSTimings

	t.RSetup = clampCycles(toCycles(sdr.TCLRMin, periodNS) - 1)

	t.RStrobe = clampCycles(max(
		toCycles(sdr.TREAMax+maxInputSetupPS, periodNS),
		toCycles(sdr.TRPMin, periodNS)) - 1)

	need := toCycles(sdr.TCEAMax+maxInputSetupPS, periodNS) - 2
	for int64(t.RSetup)+int64(t.RStrobe) < need {
		t.RStrobe++
	}

	t.RHold = clampCycles(toCycles(maxInputHoldPS-sdr.TCHZMax, periodNS) - 1)

	need = toCycles(sdr.TRCMin, periodNS) - 3
	for int64(t.RSetup)+int64(t.RStrobe)+int64(t.RHold) < need {
		t.RHold++
	}

	// Turnaround covers the rest of the output-disable time not already
	// granted by the read hold cycles.
	ta := toCycles(sdr.TRHZMax-int64(t.RHold+1)*periodNS*1000, periodNS)
	t.TA = clampCycles(max(ta, toCycles(sdr.TCHZMax, periodNS)) - 1)

	t.WStrobe = clampCycles(toCycles(sdr.TWPMin, periodNS) - 1)

	t.WSetup = clampCycles(max(
		toCycles(sdr.TCLSMin, periodNS),
		toCycles(sdr.TALSMin, periodNS),
		toCycles(sdr.TCSMin, periodNS)) - 1)

	need = toCycles(sdr.TDSMin, periodNS) - 2
	for int64(t.WSetup)+int64(t.WStrobe) < need {
		t.WStrobe++
	}

	t.WHold = clampCycles(max(
		toCycles(sdr.TCLHMin, periodNS),
		toCycles(sdr.TALHMin, periodNS),
		toCycles(sdr.TCHMin, periodNS),
		toCycles(sdr.TDHMin, periodNS)) - 1)

	need = toCycles(sdr.TWCMin, periodNS) - 2
	for int64(t.WSetup)+int64(t.WStrobe)+int64(t.WHold) < need {
		t.WHold++
	}

	return t
}

// ErrConfigRejected reports solved cycle counts outside the ranges the
// chip-select configuration register fields can hold.
var ErrConfigRejected = errors.New(
	"timing: cycle counts exceed hardware range")

// Limits bound each timing field to the range its register field can
// hold.
type Limits struct {
	MaxRSetup  uint32
	MaxRStrobe uint32
	MaxRHold   uint32
	MaxTA      uint32
	MaxWSetup  uint32
	MaxWStrobe uint32
	MaxWHold   uint32
}

// DefaultLimits match the async-interface chip-select configuration
// field widths: 4-bit setup, 6-bit strobe, 3-bit hold, 2-bit
// turnaround.
var DefaultLimits = Limits{
	MaxRSetup:  15,
	MaxRStrobe: 63,
	MaxRHold:   7,
	MaxTA:      3,
	MaxWSetup:  15,
	MaxWStrobe: 63,
	MaxWHold:   7,
}

// Validator checks solved cycle counts against the hardware before they
// may be committed.
type Validator interface {
	Check(t CSTimings) error
}

// Committer programs validated cycle counts into the async-interface
// configuration for one chip select.
type Committer interface {
	Commit(chipSel int, t CSTimings) error
}

// RangeValidator validates cycle counts against a static limit table.
type RangeValidator struct {
	Limits Limits
}

// Check implements Validator.
func (v RangeValidator) Check(t CSTimings) error {
	fields := []struct {
		name  string
		value uint32
		limit uint32
	}{
		{"rsetup", t.RSetup, v.Limits.MaxRSetup},
		{"rstrobe", t.RStrobe, v.Limits.MaxRStrobe},
		{"rhold", t.RHold, v.Limits.MaxRHold},
		{"ta", t.TA, v.Limits.MaxTA},
		{"wsetup", t.WSetup, v.Limits.MaxWSetup},
		{"wstrobe", t.WStrobe, v.Limits.MaxWStrobe},
		{"whold", t.WHold, v.Limits.MaxWHold},
	}

	for _, f := range fields {
		if f.value > f.limit {
			return fmt.Errorf("%w: %s %d > %d",
				ErrConfigRejected, f.name, f.value, f.limit)
		}
	}

	return nil
}
