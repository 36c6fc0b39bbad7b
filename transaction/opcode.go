package transaction

import (
	"github.com/pkg/errors"
)

type OpCode byte

const (
	OP_0           OpCode = 0x00 // 0
	OP_DUP         OpCode = 0x76 // 118
	OP_EQUALVERIFY OpCode = 0x88 // 136
	OP_HASH160     OpCode = 0xa9 // 169
	OP_CHECKSIG    OpCode = 0xac // 172
)

// Opcode is the decoded class of a single script byte. It is a plain
// comparable value, fine for use as a map key.
type Opcode int

const (
	OpChecksig Opcode = iota
	OpDup
	// OpInvalid marks the reserved 0x00 byte, ParseOpcode refuses it.
	OpInvalid
	// OpUnrecognized covers every byte without a dedicated decoding.
	// It is a successful result, not an error.
	OpUnrecognized
)

func (op Opcode) String() string {
	switch op {
	case OpChecksig:
		return "OP_CHECKSIG"
	case OpDup:
		return "OP_DUP"
	case OpInvalid:
		return "OP_INVALID"
	default:
		return "OP_UNRECOGNIZED"
	}
}

// 0x00 is the only byte value that is structurally invalid
var ErrInvalidOpcode = errors.New("Invalid opcode: 0x00")

// ParseOpcode maps a script byte to its Opcode. Apart from the
// reserved 0x00 every byte decodes successfully.
func ParseOpcode(b byte) (Opcode, error) {
	switch OpCode(b) {
	case OP_CHECKSIG:
		return OpChecksig, nil
	case OP_DUP:
		return OpDup, nil
	case OP_0:
		return OpInvalid, ErrInvalidOpcode
	default:
		return OpUnrecognized, nil
	}
}
