package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/nandctrl/timing"
)

var timingFlags struct {
	clockMHz int64
	check    bool
	sdr      timing.SDRTimings
}

// timingCmd solves the chip-select cycle counts for a device timing
// table. The flag defaults are the slowest standard async timing mode,
// so a bare invocation shows the power-on-safe configuration.
var timingCmd = &cobra.Command{
	Use:   "timing",
	Short: "Solve chip-select cycle counts for a device timing table",
	RunE: func(cmd *cobra.Command, args []string) error {
		clock := timing.Freq(timingFlags.clockMHz) * timing.MHz
		cycles := timing.Solve(timingFlags.sdr, clock)

		fmt.Printf("rsetup  %d\n", cycles.RSetup)
		fmt.Printf("rstrobe %d\n", cycles.RStrobe)
		fmt.Printf("rhold   %d\n", cycles.RHold)
		fmt.Printf("ta      %d\n", cycles.TA)
		fmt.Printf("wsetup  %d\n", cycles.WSetup)
		fmt.Printf("wstrobe %d\n", cycles.WStrobe)
		fmt.Printf("whold   %d\n", cycles.WHold)

		if timingFlags.check {
			v := timing.RangeValidator{Limits: timing.DefaultLimits}
			if err := v.Check(cycles); err != nil {
				return err
			}
			fmt.Println("within hardware range")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(timingCmd)

	f := timingCmd.Flags()
	f.Int64Var(&timingFlags.clockMHz, "clock-mhz", 100,
		"bus clock in MHz")
	f.BoolVar(&timingFlags.check, "check", false,
		"validate the result against the register field ranges")

	sdr := &timingFlags.sdr
	f.Int64Var(&sdr.TCLRMin, "tclr-min", 20000, "tCLR min (ps)")
	f.Int64Var(&sdr.TREAMax, "trea-max", 40000, "tREA max (ps)")
	f.Int64Var(&sdr.TRPMin, "trp-min", 50000, "tRP min (ps)")
	f.Int64Var(&sdr.TCEAMax, "tcea-max", 100000, "tCEA max (ps)")
	f.Int64Var(&sdr.TCHZMax, "tchz-max", 100000, "tCHZ max (ps)")
	f.Int64Var(&sdr.TRCMin, "trc-min", 100000, "tRC min (ps)")
	f.Int64Var(&sdr.TRHZMax, "trhz-max", 200000, "tRHZ max (ps)")
	f.Int64Var(&sdr.TWPMin, "twp-min", 50000, "tWP min (ps)")
	f.Int64Var(&sdr.TCLSMin, "tcls-min", 50000, "tCLS min (ps)")
	f.Int64Var(&sdr.TALSMin, "tals-min", 50000, "tALS min (ps)")
	f.Int64Var(&sdr.TCSMin, "tcs-min", 70000, "tCS min (ps)")
	f.Int64Var(&sdr.TDSMin, "tds-min", 40000, "tDS min (ps)")
	f.Int64Var(&sdr.TCLHMin, "tclh-min", 20000, "tCLH min (ps)")
	f.Int64Var(&sdr.TALHMin, "talh-min", 20000, "tALH min (ps)")
	f.Int64Var(&sdr.TCHMin, "tch-min", 20000, "tCH min (ps)")
	f.Int64Var(&sdr.TDHMin, "tdh-min", 20000, "tDH min (ps)")
	f.Int64Var(&sdr.TWCMin, "twc-min", 100000, "tWC min (ps)")
}
