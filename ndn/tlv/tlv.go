// Package tlv implements NDN Type-Length-Value (TLV) encoding.
//
// Encoding is performed by Encoder, which grows toward the front so that nested elements can be
// written without knowing their lengths in advance.
// Decoding is performed by DecodingBuffer, which yields elements whose TLV-VALUE slices refer to the
// input buffer without copying.
// EvDecoder and StructBuilder build on these to describe evolvable structured records.
package tlv

// Fielder is the interface implemented by an object that can encode itself to a Field.
type Fielder interface {
	Field() Field
}

// Unmarshaler is the interface implemented by an object that can decode an TLV element representation of itself.
type Unmarshaler interface {
	UnmarshalTLV(typ uint32, value []byte) error
}

const (
	minType = 1
	maxType = MaxVarNum
)

// IsCritical determines whether an unrecognized TLV-TYPE is critical.
// An unrecognized critical TLV-TYPE causes a decoding error, while a non-critical one is ignored.
type IsCritical func(typ uint32) bool

// IsCriticalType implements the NDN packet format rule:
// TLV-TYPE numbers 0-31 and odd numbers are critical.
func IsCriticalType(typ uint32) bool {
	return typ <= 31 || typ%2 == 1
}

// NeverCritical treats every unrecognized TLV-TYPE as non-critical.
func NeverCritical(typ uint32) bool {
	return false
}

// AlwaysCritical treats every unrecognized TLV-TYPE as critical.
func AlwaysCritical(typ uint32) bool {
	return true
}
