package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/nandctrl/nand"
)

var oobFlags struct {
	pageSize int
	oobSize  int
}

var oobCmd = &cobra.Command{
	Use:   "oob",
	Short: "Print the 4-bit ECC spare-area layout for a page geometry",
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := nand.LayoutFor(nand.Geometry{
			PageSize: oobFlags.pageSize,
			OOBSize:  oobFlags.oobSize,
		})
		if err != nil {
			return err
		}

		if err := printRegions("ecc", layout.ECC); err != nil {
			return err
		}
		return printRegions("free", layout.Free)
	},
}

func printRegions(
	kind string,
	get func(section int) (nand.Region, error),
) error {
	for section := 0; ; section++ {
		r, err := get(section)
		if errors.Is(err, nand.ErrOutOfRange) {
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("%-4s %d: offset %3d length %3d\n",
			kind, section, r.Offset, r.Length)
	}
}

func init() {
	rootCmd.AddCommand(oobCmd)

	f := oobCmd.Flags()
	f.IntVar(&oobFlags.pageSize, "page-size", 2048, "page size in bytes")
	f.IntVar(&oobFlags.oobSize, "oob-size", 64, "spare area size in bytes")
}
