package common

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/pkg/errors"
)

// DecodeHex parses a hex string into bytes. The raw hex.DecodeString
// error is returned so callers can inspect the failure reason.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// DecodeHexMsg is the same parse but wraps the failure into a
// descriptive message for callers that only want to report it.
func DecodeHexMsg(s string) ([]byte, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to decode hex")
	}
	return buf, nil
}

// EncodeHex never fails, output is lower-case and twice the input length.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// ReverseBytes 翻转字节序，比如小端变大端
// the input slice is left untouched, a reversed copy is returned
func ReverseBytes(data []byte) []byte {
	var length = len(data)
	buf := make([]byte, length)
	copy(buf, data)
	for i := 0; i < length/2; i++ {
		buf[i], buf[length-1-i] = buf[length-1-i], buf[i]
	}
	return buf
}

// 把单个uint32类型数据变成小端字节序
func Uint32ToLEBytes(n uint32) [4]byte {
	var uint32Bytes [4]byte
	binary.LittleEndian.PutUint32(uint32Bytes[:], n)
	return uint32Bytes
}
