package cmd

import (
	"os"

	"btccodec/common"

	"github.com/spf13/cobra"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "btccodec",
		Short: "btccodec is a toolbox for btc script and utxo primitives",
		Long:  `btccodec is a toolbox for btc script and utxo primitives`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := common.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			setupLoggers(cfg)
			return nil
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (optional)")
}
