package utxo

import (
	"bytes"
)

// Outpoint references the output being consumed: the funding txid as
// hex text plus the output index. Equality is structural.
type Outpoint struct {
	Txid string
	Vout uint8
}

// UTXO is an unspent output. Txid is the raw byte form, unlike
// Outpoint.Txid which stays hex text. Any value is accepted at
// construction, including zero.
type UTXO struct {
	Txid  []byte
	Vout  uint32
	Value uint64
}

// Consume takes the UTXO by value and returns it marked spent, with
// Value forced to zero. Txid and Vout are untouched. Consuming an
// already spent UTXO is a no-op.
func Consume(u UTXO) UTXO {
	u.Value = 0
	return u
}

// Spent reports whether the output has been consumed. A legitimately
// zero-value unspent output is indistinguishable from a spent one,
// the zero value is all this model carries.
func (u UTXO) Spent() bool {
	return u.Value == 0
}

func (u UTXO) Equal(other UTXO) bool {
	return bytes.Equal(u.Txid, other.Txid) && u.Vout == other.Vout && u.Value == other.Value
}
