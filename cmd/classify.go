package cmd

import (
	"fmt"

	"btccodec/common"
	"btccodec/transaction"

	"github.com/spf13/cobra"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <scripthex>",
	Short: "classify a locking script byte pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := common.DecodeHexMsg(args[0])
		if err != nil {
			return err
		}
		fmt.Println("type:", transaction.ClassifyScript(script))
		pushdata, err := transaction.ReadPushdata(script)
		if err != nil {
			log.Warnln(err)
			return nil
		}
		fmt.Println("pushdata:", common.EncodeHex(pushdata))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
