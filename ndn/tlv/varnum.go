package tlv

import "math"

// VarNum represents a number in variable size encoding for TLV-TYPE or TLV-LENGTH.
//
// Only the 1-octet, 3-octet, and 5-octet forms are supported.
// Numbers above math.MaxUint32 cannot be encoded, and the 9-octet form is rejected when decoding.
type VarNum uint64

// MaxVarNum is the largest number that can be represented as VarNum.
const MaxVarNum = math.MaxUint32

// Valid determines whether this number can be encoded.
func (n VarNum) Valid() bool {
	return n <= MaxVarNum
}

// Size returns the wire encoding size.
// It returns 0 if the number cannot be encoded.
func (n VarNum) Size() int {
	switch {
	case n < 0xFD:
		return 1
	case n <= math.MaxUint16:
		return 3
	case n <= math.MaxUint32:
		return 5
	default:
		return 0
	}
}

// Encode appends this number to a buffer.
func (n VarNum) Encode(b []byte) ([]byte, error) {
	switch {
	case n < 0xFD:
		return append(b, byte(n)), nil
	case n <= math.MaxUint16:
		return append(b, 0xFD, byte(n>>8), byte(n)), nil
	case n <= math.MaxUint32:
		return append(b, 0xFE, byte(n>>24), byte(n>>16), byte(n>>8), byte(n)), nil
	default:
		return b, ErrRange
	}
}

// Prepend writes this number into room, which must have exactly n.Size() octets.
func (n VarNum) Prepend(room []byte) {
	switch len(room) {
	case 1:
		room[0] = byte(n)
	case 3:
		room[0], room[1], room[2] = 0xFD, byte(n>>8), byte(n)
	case 5:
		room[0], room[1], room[2], room[3], room[4] = 0xFE, byte(n>>24), byte(n>>16), byte(n>>8), byte(n)
	default:
		panic(ErrRange)
	}
}

// Decode extracts a VarNum from the buffer.
// Non-minimal encodings are accepted.
func (n *VarNum) Decode(wire []byte) (rest []byte, e error) {
	if len(wire) < 1 {
		return nil, ErrIncomplete
	}
	switch wire[0] {
	case 0xFD:
		if len(wire) < 3 {
			return nil, ErrIncomplete
		}
		*n = (VarNum(wire[1]) << 8) | VarNum(wire[2])
		return wire[3:], nil
	case 0xFE:
		if len(wire) < 5 {
			return nil, ErrIncomplete
		}
		*n = (VarNum(wire[1]) << 24) | (VarNum(wire[2]) << 16) | (VarNum(wire[3]) << 8) | VarNum(wire[4])
		return wire[5:], nil
	case 0xFF:
		return nil, ErrVarNumWidth
	default:
		*n = VarNum(wire[0])
		return wire[1:], nil
	}
}
