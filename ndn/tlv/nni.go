package tlv

import (
	"encoding"
	"encoding/binary"
	"math"
)

// NNI is a non-negative integer.
type NNI uint64

var (
	_ Fielder                    = NNI(0)
	_ encoding.BinaryMarshaler   = NNI(0)
	_ encoding.BinaryUnmarshaler = (*NNI)(nil)
)

// Size returns the wire encoding size.
func (n NNI) Size() int {
	switch {
	case n <= math.MaxUint8:
		return 1
	case n <= math.MaxUint16:
		return 2
	case n <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// Encode appends this number to a buffer.
func (n NNI) Encode(b []byte) []byte {
	switch n.Size() {
	case 1:
		return append(b, byte(n))
	case 2:
		return binary.BigEndian.AppendUint16(b, uint16(n))
	case 4:
		return binary.BigEndian.AppendUint32(b, uint32(n))
	default:
		return binary.BigEndian.AppendUint64(b, uint64(n))
	}
}

// Prepend writes this number in front of existing encoder content.
func (n NNI) Prepend(enc *Encoder) {
	room := enc.Prepend(n.Size())
	switch len(room) {
	case 1:
		room[0] = byte(n)
	case 2:
		binary.BigEndian.PutUint16(room, uint16(n))
	case 4:
		binary.BigEndian.PutUint32(room, uint32(n))
	case 8:
		binary.BigEndian.PutUint64(room, uint64(n))
	}
}

// Field implements Fielder interface.
func (n NNI) Field() Field {
	return Field{
		typ:     fieldTypeNNI,
		integer: uint64(n),
	}
}

// MarshalBinary encodes this number.
func (n NNI) MarshalBinary() (value []byte, e error) {
	return n.Encode(nil), nil
}

// UnmarshalBinary decodes this number.
func (n *NNI) UnmarshalBinary(wire []byte) error {
	switch len(wire) {
	case 1:
		*n = NNI(wire[0])
	case 2:
		*n = NNI(binary.BigEndian.Uint16(wire))
	case 4:
		*n = NNI(binary.BigEndian.Uint32(wire))
	case 8:
		*n = NNI(binary.BigEndian.Uint64(wire))
	default:
		return ErrNNILength
	}
	return nil
}
