package transaction

import (
	"btccodec/common"

	"github.com/pkg/errors"
)

type ScriptType int

const (
	ScriptP2PKH ScriptType = iota
	ScriptP2WPKH
	ScriptUnknown
)

func (st ScriptType) String() string {
	switch st {
	case ScriptP2PKH:
		return "P2PKH"
	case ScriptP2WPKH:
		return "P2WPKH"
	default:
		return "Unknown"
	}
}

// pushdata is assumed to start right after a 2-byte script header
const pushdataOffset = 2

var ErrScriptTooShort = errors.New("script too short for pushdata")

// ClassifyScript decides the spending-condition category from the
// script length and leading byte. Only 3-byte scripts are matched:
// a zero first byte means P2WPKH, any other first byte means P2PKH.
// Every other length is Unknown, never an error.
func ClassifyScript(script []byte) ScriptType {
	if len(script) != 3 {
		return ScriptUnknown
	}
	if OpCode(script[0]) == OP_0 {
		return ScriptP2WPKH
	}
	return ScriptP2PKH
}

// ReadPushdata returns the script bytes from the pushdata offset to
// the end. Scripts shorter than the header are refused instead of
// panicking on the slice bound.
func ReadPushdata(script []byte) ([]byte, error) {
	if len(script) < pushdataOffset {
		return nil, ErrScriptTooShort
	}
	return script[pushdataOffset:], nil
}

type ScriptBuilder struct {
	script []byte
}

func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{}
}

func (sb *ScriptBuilder) AddCode(code OpCode) *ScriptBuilder {
	sb.script = append(sb.script, byte(code))
	return sb
}

func (sb *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	sb.script = append(sb.script, data...)
	return sb
}

func (sb *ScriptBuilder) Script() []byte {
	return sb.script
}

// PayToPubkeyHash assembles the canonical locking script
// OP_DUP OP_HASH160 <hash160(pubkey)> OP_EQUALVERIFY OP_CHECKSIG
func PayToPubkeyHash(pubkey []byte) ([]byte, error) {
	h160, err := common.Ripemd160AfterSha256(pubkey)
	if err != nil {
		return nil, err
	}
	sb := NewScriptBuilder()
	sb.AddCode(OP_DUP).AddCode(OP_HASH160).AddData(h160).AddCode(OP_EQUALVERIFY).AddCode(OP_CHECKSIG)
	log.Tracef("built p2pkh script for pubkey %s", common.EncodeHex(pubkey))
	return sb.Script(), nil
}
