package tlv

import (
	"encoding"
	"fmt"
	"unicode/utf8"
)

// Element represents a TLV element.
// The zero Element is invalid.
type Element struct {
	// Type is the TLV-TYPE.
	Type uint32
	// Value is the TLV-VALUE.
	Value []byte
}

var (
	_ Fielder     = Element{}
	_ Unmarshaler = (*Element)(nil)
)

// MakeElement constructs Element from TLV-TYPE and TLV-VALUE.
func MakeElement(typ uint32, value []byte) (element Element) {
	element.Type = typ
	element.Value = value
	return element
}

// Size returns encoded size.
func (element Element) Size() int {
	return VarNum(element.Type).Size() + VarNum(element.Length()).Size() + element.Length()
}

// Length returns TLV-LENGTH.
func (element Element) Length() int {
	return len(element.Value)
}

// Field implements Fielder interface.
func (element Element) Field() Field {
	return TLVBytes(element.Type, element.Value)
}

// UnmarshalTLV implements Unmarshaler interface.
func (element *Element) UnmarshalTLV(typ uint32, value []byte) error {
	element.Type = typ
	element.Value = value
	return nil
}

// Clone returns a copy of this element that does not share TLV-VALUE memory.
func (element Element) Clone() Element {
	return MakeElement(element.Type, append([]byte{}, element.Value...))
}

func (element Element) String() string {
	return fmt.Sprintf("0x%X(%d)", element.Type, element.Length())
}

// DecodingElement represents a TLV element during decoding.
type DecodingElement struct {
	Element
	// Wire is the complete TLV element.
	Wire []byte
	// After is the remaining bytes after this element.
	After []byte
}

// IsCriticalType determines whether the TLV-TYPE is critical under the NDN packet format rule.
func (de DecodingElement) IsCriticalType() bool {
	return IsCriticalType(de.Type)
}

// Unmarshal unmarshals TLV into a value.
func (de DecodingElement) Unmarshal(u Unmarshaler) error {
	return u.UnmarshalTLV(de.Type, de.Value)
}

// UnmarshalValue unmarshals TLV-VALUE into a value.
func (de DecodingElement) UnmarshalValue(u encoding.BinaryUnmarshaler) error {
	return u.UnmarshalBinary(de.Value)
}

// UnmarshalNNI unmarshals TLV-VALUE as NNI and checks it's within [0:max] range.
func (de DecodingElement) UnmarshalNNI(max uint64, err *error, rangeErr error) (v uint64) {
	var n NNI
	if e := n.UnmarshalBinary(de.Value); e != nil {
		*err = e
		return 0
	}

	if v = uint64(n); v > max {
		*err = rangeErr
		return 0
	}

	*err = nil
	return v
}

// NNI unmarshals TLV-VALUE as NNI.
func (de DecodingElement) NNI() (v uint64, e error) {
	var n NNI
	e = n.UnmarshalBinary(de.Value)
	return uint64(n), e
}

// Text unmarshals TLV-VALUE as UTF-8 string.
func (de DecodingElement) Text() (s string, e error) {
	if !utf8.Valid(de.Value) {
		return "", ErrText
	}
	return string(de.Value), nil
}
