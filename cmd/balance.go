package cmd

import (
	"fmt"

	"btccodec/wallet"

	"github.com/spf13/cobra"
)

var feeArg string

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance <satoshis>",
	Short: "show a balance in BTC after subtracting an optional fee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		balance, err := wallet.ParseSatoshis(args[0])
		if err != nil {
			return err
		}
		if feeArg != "" {
			fee, err := wallet.ParseSatoshis(feeArg)
			if err != nil {
				return err
			}
			if err = wallet.ApplyFee(&balance, fee); err != nil {
				return err
			}
		}
		w := wallet.TestWallet{Confirmed: balance}
		fmt.Printf("%s BTC\n", wallet.FormatSatoshis(w.Balance()))
		return nil
	},
}

func init() {
	balanceCmd.Flags().StringVar(&feeArg, "fee", "", "fee in satoshis to subtract")
	rootCmd.AddCommand(balanceCmd)
}
