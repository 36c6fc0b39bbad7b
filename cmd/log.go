package cmd

import (
	"os"
	"path/filepath"

	"btccodec/common"
	"btccodec/transaction"
	"btccodec/utxo"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

var logRotator *rotator.Rotator

// logWriter duplicates btclog output to stdout and the rotating file.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	if _, err = os.Stdout.Write(p); err != nil {
		return 0, err
	}
	if logRotator != nil {
		if _, err = logRotator.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

var backendLog = btclog.NewBackend(logWriter{})

func initLogRotator(logFile string) {
	err := os.MkdirAll(filepath.Dir(logFile), 0700)
	if err != nil {
		log.Errorln(err)
		return
	}
	logRotator, err = rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		log.Errorln(err)
	}
}

func setupLoggers(cfg *common.Config) {
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	initLogRotator(filepath.Join(cfg.LogDir, "btccodec.log"))

	txLog := backendLog.Logger("TXSC")
	utxoLog := backendLog.Logger("UTXO")
	if lvl, ok := btclog.LevelFromString(cfg.LogLevel); ok {
		txLog.SetLevel(lvl)
		utxoLog.SetLevel(lvl)
	}
	transaction.UseLogger(txLog)
	utxo.UseLogger(utxoLog)
}

func init() {
	log = logrus.New()
}
