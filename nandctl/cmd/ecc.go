package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/nandctrl/nand"
)

var eccCmd = &cobra.Command{
	Use:   "ecc",
	Short: "Pack and unpack 4-bit ECC codewords",
}

var eccPackCmd = &cobra.Command{
	Use:   "pack v0 v1 v2 v3 v4 v5 v6 v7",
	Short: "Pack eight 10-bit parity values into the ten codeword bytes",
	Args:  cobra.ExactArgs(8),
	RunE: func(cmd *cobra.Command, args []string) error {
		var values [8]uint16
		for i, arg := range args {
			v, err := strconv.ParseUint(arg, 0, 16)
			if err != nil {
				return fmt.Errorf("parity value %q: %w", arg, err)
			}
			if v > 0x3ff {
				return fmt.Errorf("parity value %#x exceeds 10 bits", v)
			}
			values[i] = uint16(v)
		}

		code := nand.PackCodeword(values)
		for i, b := range code {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%02x", b)
		}
		fmt.Println()

		return nil
	},
}

var eccUnpackCmd = &cobra.Command{
	Use:   "unpack b0 b1 b2 b3 b4 b5 b6 b7 b8 b9",
	Short: "Unpack ten codeword bytes into the eight parity values",
	Args:  cobra.ExactArgs(10),
	RunE: func(cmd *cobra.Command, args []string) error {
		var code [10]byte
		for i, arg := range args {
			b, err := strconv.ParseUint(arg, 16, 8)
			if err != nil {
				return fmt.Errorf("codeword byte %q: %w", arg, err)
			}
			code[i] = byte(b)
		}

		values := nand.UnpackCodeword(code)
		for i, v := range values {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%#03x", v)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eccCmd)
	eccCmd.AddCommand(eccPackCmd)
	eccCmd.AddCommand(eccUnpackCmd)
}
