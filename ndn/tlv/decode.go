package tlv

import (
	"encoding"
	"iter"
)

// DecodingBuffer recognizes TLV elements.
// Elements returned from its methods refer to the underlying buffer, which must not be modified.
type DecodingBuffer []byte

// Rest returns unconsumed input.
func (d DecodingBuffer) Rest() []byte {
	return []byte(d)
}

// EOF returns true if decoder is at end of input.
func (d DecodingBuffer) EOF() bool {
	return len(d) == 0
}

// ErrUnlessEOF returns an error if there is unconsumed input.
func (d DecodingBuffer) ErrUnlessEOF() error {
	if d.EOF() {
		return nil
	}
	return ErrTail
}

// Element recognizes the next element.
// If the input is malformed, an error is returned and the buffer is not advanced.
func (d *DecodingBuffer) Element() (de DecodingElement, e error) {
	wire := []byte(*d)
	var typ, length VarNum
	rest, e := typ.Decode(wire)
	if e != nil {
		return de, e
	}
	if typ < minType || typ > maxType {
		return de, ErrType
	}
	if rest, e = length.Decode(rest); e != nil {
		return de, e
	}
	if uint64(len(rest)) < uint64(length) {
		return de, ErrIncomplete
	}

	de.Type = uint32(typ)
	de.Value = rest[:length:length]
	de.After = rest[length:]
	de.Wire = wire[:len(wire)-len(de.After)]
	*d = DecodingBuffer(de.After)
	return de, nil
}

// IterElements returns an iterator of remaining elements.
// It stops at the end of input or upon the first malformed element, which can be detected with ErrUnlessEOF.
func (d *DecodingBuffer) IterElements() iter.Seq[DecodingElement] {
	return func(yield func(DecodingElement) bool) {
		for !d.EOF() {
			de, e := d.Element()
			if e != nil || !yield(de) {
				return
			}
		}
	}
}

// Elements recognizes elements until the end of input or the first malformed element.
func (d *DecodingBuffer) Elements() (list []DecodingElement) {
	for de := range d.IterElements() {
		list = append(list, de)
	}
	return list
}

// Decode unmarshals a buffer that contains exactly one TLV element.
func Decode(wire []byte, u Unmarshaler) error {
	d := DecodingBuffer(wire)
	de, e := d.Element()
	if e != nil {
		return e
	}
	if e := de.Unmarshal(u); e != nil {
		return e
	}
	return d.ErrUnlessEOF()
}

// DecodeValue unmarshals a TLV-VALUE.
func DecodeValue(value []byte, u encoding.BinaryUnmarshaler) error {
	return u.UnmarshalBinary(value)
}

// DecodeFirst extracts the first TLV element.
func DecodeFirst(wire []byte) (element Element, rest []byte, e error) {
	d := DecodingBuffer(wire)
	de, e := d.Element()
	if e != nil {
		return Element{}, nil, e
	}
	return de.Element, de.After, nil
}

// DecodeFirstExpect extracts the first TLV element, expecting a specified TLV-TYPE.
func DecodeFirstExpect(typ uint32, wire []byte) (element Element, rest []byte, e error) {
	if element, rest, e = DecodeFirst(wire); e != nil {
		return Element{}, nil, e
	}
	if element.Type != typ {
		return Element{}, nil, ErrTypeExpect(typ, element.Type)
	}
	return element, rest, nil
}
