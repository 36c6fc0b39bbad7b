package utxo

import (
	"encoding/binary"

	"btccodec/common"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

var ErrUtxoNotFound = errors.New("UTXO not found")

// Set is an outpoint-keyed UTXO collection. It runs on leveldb's
// memory storage backend, nothing is written to disk.
type Set struct {
	db *leveldb.DB
}

func NewSet() (*Set, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &Set{db: db}, nil
}

// 键由交易哈希和小端序输出索引拼接而成
// txids longer than 32 bytes are truncated into the key
func outpointKey(txid []byte, vout uint32) [36]byte {
	var key [36]byte
	copy(key[:32], txid)
	var i2b4 [4]byte
	binary.LittleEndian.PutUint32(i2b4[:], vout)
	copy(key[32:], i2b4[:])
	return key
}

func (s *Set) Put(u UTXO) error {
	key := outpointKey(u.Txid, u.Vout)
	return s.db.Put(key[:], u.Serialize(), nil)
}

func (s *Set) Get(op Outpoint) (UTXO, error) {
	txid, err := common.DecodeHex(op.Txid)
	if err != nil {
		return UTXO{}, errors.Wrap(err, "outpoint txid")
	}
	key := outpointKey(txid, uint32(op.Vout))
	buf, err := s.db.Get(key[:], nil)
	if err == leveldb.ErrNotFound {
		return UTXO{}, ErrUtxoNotFound
	}
	if err != nil {
		return UTXO{}, err
	}
	var u UTXO
	if err = u.Parse(buf); err != nil {
		return UTXO{}, err
	}
	return u, nil
}

// Spend consumes the referenced output and stores it back with a
// zero value. The consumed UTXO is returned to the caller.
func (s *Set) Spend(op Outpoint) (UTXO, error) {
	u, err := s.Get(op)
	if err != nil {
		return UTXO{}, err
	}
	spent := Consume(u)
	if err = s.Put(spent); err != nil {
		return UTXO{}, err
	}
	log.Infof("utxo %s:%d spent", op.Txid, op.Vout)
	return spent, nil
}

func (s *Set) Delete(op Outpoint) error {
	txid, err := common.DecodeHex(op.Txid)
	if err != nil {
		return errors.Wrap(err, "outpoint txid")
	}
	key := outpointKey(txid, uint32(op.Vout))
	return s.db.Delete(key[:], nil)
}

// TotalValue sums the value of every record still held in the set.
// Spent records contribute zero.
func (s *Set) TotalValue() (uint64, error) {
	var sum uint64
	iter := s.db.NewIterator(nil, nil)
	for iter.Next() {
		var u UTXO
		if err := u.Parse(iter.Value()); err != nil {
			iter.Release()
			return 0, err
		}
		sum += u.Value
	}
	iter.Release()
	return sum, iter.Error()
}

func (s *Set) Close() error {
	return s.db.Close()
}
