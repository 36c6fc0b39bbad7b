package utxo

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// record layout: LE32(vout) || LE64(value) || txid bytes
const recordMinLen = 12

var ErrRecordTooShort = errors.New("utxo record too short")

func (u *UTXO) Serialize() []byte {
	buf := make([]byte, recordMinLen+len(u.Txid))
	binary.LittleEndian.PutUint32(buf[:4], u.Vout)
	binary.LittleEndian.PutUint64(buf[4:12], u.Value)
	copy(buf[12:], u.Txid)
	return buf
}

func (u *UTXO) Parse(data []byte) error {
	if len(data) < recordMinLen {
		return ErrRecordTooShort
	}
	u.Vout = binary.LittleEndian.Uint32(data[:4])
	u.Value = binary.LittleEndian.Uint64(data[4:12])
	u.Txid = make([]byte, len(data)-recordMinLen)
	copy(u.Txid, data[12:])
	return nil
}
