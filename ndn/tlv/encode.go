package tlv

import (
	"math"

	"golang.org/x/exp/constraints"
)

type fieldType uint8

const (
	fieldTypeEmpty fieldType = iota
	fieldTypeError
	fieldTypeFunc
	fieldTypeEncoderFunc
	fieldTypeBytes
	fieldTypeNNI
	fieldTypeTLVFields
	fieldTypeTLVFielders
)

// valueOnly in Field.integer suppresses TLV-TYPE and TLV-LENGTH of a nested field.
const valueOnly = math.MaxUint64

// Field is an encodable field.
// Zero value encodes to nothing.
type Field struct {
	typ     fieldType
	integer uint64
	object  any
}

// Encode appends to the byte slice.
// Returns modified slice and error.
func (f Field) Encode(b []byte) ([]byte, error) {
	var enc Encoder
	enc.PrependField(f)
	wire, e := enc.Output()
	if e != nil {
		return nil, e
	}
	return append(b, wire...), nil
}

// Field implements Fielder interface.
func (f Field) Field() Field {
	return f
}

// FieldError creates a Field that generates an error.
func FieldError(e error) Field {
	if e == nil {
		e = ErrErrorField
	}
	return Field{
		typ:    fieldTypeError,
		object: e,
	}
}

// FieldFunc creates a Field that calls a function to append to a slice.
// The function is invoked with a nil slice and its output is prepended.
func FieldFunc(f func([]byte) ([]byte, error)) Field {
	return Field{
		typ:    fieldTypeFunc,
		object: f,
	}
}

// FieldEncoderFunc creates a Field that calls a function to prepend to an Encoder.
func FieldEncoderFunc(f func(enc *Encoder)) Field {
	return Field{
		typ:    fieldTypeEncoderFunc,
		object: f,
	}
}

// Bytes creates a Field that encodes to given bytes.
func Bytes(b []byte) Field {
	return Field{
		typ:    fieldTypeBytes,
		object: b,
	}
}

// Sequence creates a Field that encodes to a sequence of Fields, without TLV-TYPE and TLV-LENGTH.
func Sequence(values ...Field) Field {
	return Field{
		typ:     fieldTypeTLVFields,
		integer: valueOnly,
		object:  values,
	}
}

// TLV creates a Field that encodes to TLV element from TLV-TYPE and TLV-VALUE Fields.
func TLV(typ uint32, values ...Field) Field {
	if typ < minType || typ > maxType {
		return FieldError(ErrType)
	}
	return Field{
		typ:     fieldTypeTLVFields,
		integer: uint64(typ),
		object:  values,
	}
}

// TLVFrom creates a Field that encodes to TLV element from TLV-TYPE and TLV-VALUE Fielders.
func TLVFrom(typ uint32, values ...Fielder) Field {
	if typ < minType || typ > maxType {
		return FieldError(ErrType)
	}
	return Field{
		typ:     fieldTypeTLVFielders,
		integer: uint64(typ),
		object:  values,
	}
}

// TLVBytes creates a Field that encodes to TLV element from TLV-TYPE and TLV-VALUE byte slice.
func TLVBytes(typ uint32, value []byte) Field {
	return TLV(typ, Bytes(value))
}

// TLVNNI creates a Field that encodes to TLV element from TLV-TYPE and TLV-VALUE NonNegativeInteger.
func TLVNNI[V constraints.Integer](typ uint32, v V) Field {
	if v < 0 {
		return FieldError(ErrRange)
	}
	return TLVFrom(typ, NNI(v))
}

// Encode encodes a sequence of Fields.
func Encode(fields ...Field) (wire []byte, e error) {
	var enc Encoder
	for i := len(fields) - 1; i >= 0; i-- {
		enc.PrependField(fields[i])
	}
	return enc.Output()
}

// EncodeFrom encodes a sequence of Fielders.
func EncodeFrom(fields ...Fielder) (wire []byte, e error) {
	var enc Encoder
	enc.PrependFrom(fields...)
	return enc.Output()
}

// EncodeValueOnly returns TLV-VALUE of a Fielder created by TLV, TLVFrom, TLVBytes, or TLVNNI.
func EncodeValueOnly(f Fielder) ([]byte, error) {
	field := f.Field()
	switch field.typ {
	case fieldTypeError:
		return nil, field.object.(error)
	case fieldTypeTLVFields, fieldTypeTLVFielders:
		field.integer = valueOnly
		return Encode(field)
	default:
		return nil, ErrErrorField
	}
}
