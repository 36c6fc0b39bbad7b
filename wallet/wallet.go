package wallet

import (
	"fmt"
	"math/big"
	"strconv"

	"btccodec/utxo"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount     = errors.New("Invalid satoshi amount")
	ErrInsufficientFunds = errors.New("fee exceeds balance")
)

var log *logrus.Logger

type Wallet interface {
	Balance() uint64
}

// TestWallet reports a fixed confirmed balance.
type TestWallet struct {
	Confirmed uint64
}

func (tw *TestWallet) Balance() uint64 {
	return tw.Confirmed
}

// SetWallet reports the balance held in an in-memory UTXO set.
type SetWallet struct {
	Utxos *utxo.Set
}

func (sw *SetWallet) Balance() uint64 {
	total, err := sw.Utxos.TotalValue()
	if err != nil {
		log.Errorln(err)
		return 0
	}
	return total
}

// ApplyFee subtracts the fee from the balance. Charging more than
// the balance holds is refused, uint64 must not wrap.
func ApplyFee(balance *uint64, fee uint64) error {
	if fee > *balance {
		return ErrInsufficientFunds
	}
	*balance -= fee
	return nil
}

// ParseSatoshis parses a decimal satoshi amount.
func ParseSatoshis(input string) (uint64, error) {
	value, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return value, nil
}

// FormatSatoshis renders a satoshi amount as a BTC decimal string
// with eight fractional places.
func FormatSatoshis(sat uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(sat), -8).StringFixed(8)
}

// TxidLabel is the display form of a transaction id.
func TxidLabel(txid string) string {
	return fmt.Sprintf("txid: %s", txid)
}

func init() {
	log = logrus.New()
}
