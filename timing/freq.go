package timing

import "log"

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// PeriodNS returns the clock period in whole nanoseconds, truncating
// the way the hardware divider does.
func (f Freq) PeriodNS() int64 {
	if f <= 0 {
		log.Panic("frequency must be positive")
	}
	return int64(1e9) / int64(f)
}
