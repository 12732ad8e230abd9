package cmd

import (
	"github.com/beanboi7/chyp8/emu/disasm"
	"github.com/beanboi7/chyp8/emu/rom"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print the instructions of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := rom.Read(args[0])
		if err != nil {
			return err
		}
		return disasm.Write(cmd.OutOrStdout(), image)
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
