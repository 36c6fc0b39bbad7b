package cmd

import (
	"fmt"

	"btccodec/common"
	"btccodec/transaction"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// opcodeCmd represents the opcode command
var opcodeCmd = &cobra.Command{
	Use:   "opcode <bytehex>",
	Short: "decode a single script opcode byte",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := common.DecodeHexMsg(args[0])
		if err != nil {
			return err
		}
		if len(buf) != 1 {
			return errors.Errorf("expect exactly one byte, got %d", len(buf))
		}
		op, err := transaction.ParseOpcode(buf[0])
		if err != nil {
			return err
		}
		fmt.Println(op)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(opcodeCmd)
}
