package cmd

import (
	"fmt"

	"btccodec/common"

	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "decode a hex string into bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := common.DecodeHexMsg(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d bytes: %v\n", len(buf), buf)
		fmt.Printf("reversed: %s\n", common.EncodeHex(common.ReverseBytes(buf)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
