package common

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Ripemd160AfterSha256 is the hash160 used for pubkey-hash scripts.
func Ripemd160AfterSha256(data []byte) ([]byte, error) {
	hash256 := sha256.Sum256(data)
	ripemd160Obj := ripemd160.New()
	if _, err := ripemd160Obj.Write(hash256[:]); err != nil {
		return nil, err
	}
	return ripemd160Obj.Sum(nil), nil
}
