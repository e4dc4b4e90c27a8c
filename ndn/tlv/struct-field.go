package tlv

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/constraints"
)

// StructFieldType describes how a struct field value is represented as TLV-VALUE.
type StructFieldType[V any] interface {
	// EncodeValue encodes the value as TLV-VALUE.
	EncodeValue(v V) Field
	// DecodeValue decodes the value from an element.
	DecodeValue(de DecodingElement) (V, error)
	// String converts the value to a human-readable string.
	String(v V) string
}

type structFieldNNI struct {
	max uint64
}

func (structFieldNNI) EncodeValue(v uint64) Field {
	return NNI(v).Field()
}

func (ft structFieldNNI) DecodeValue(de DecodingElement) (v uint64, e error) {
	v = de.UnmarshalNNI(ft.max, &e, ErrRange)
	return
}

func (structFieldNNI) String(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// StructFieldNNI is a field of NonNegativeInteger.
var StructFieldNNI StructFieldType[uint64] = structFieldNNI{max: ^uint64(0)}

// StructFieldNNIMax returns a field type of NonNegativeInteger with an upper bound.
// Decoding a number above max fails with ErrRange.
func StructFieldNNIMax(max uint64) StructFieldType[uint64] {
	return structFieldNNI{max: max}
}

type structFieldText struct{}

func (structFieldText) EncodeValue(v string) Field {
	return Bytes([]byte(v))
}

func (structFieldText) DecodeValue(de DecodingElement) (string, error) {
	return de.Text()
}

func (structFieldText) String(v string) string {
	return strconv.Quote(v)
}

// StructFieldText is a field of UTF-8 string.
var StructFieldText StructFieldType[string] = structFieldText{}

type structFieldBytes struct{}

func (structFieldBytes) EncodeValue(v []byte) Field {
	return Bytes(v)
}

func (structFieldBytes) DecodeValue(de DecodingElement) ([]byte, error) {
	return de.Value, nil
}

func (structFieldBytes) String(v []byte) string {
	return hex.EncodeToString(v)
}

// StructFieldBytes is a field of arbitrary bytes.
// Decoded value refers to the input buffer.
var StructFieldBytes StructFieldType[[]byte] = structFieldBytes{}

type structFieldEnum[E constraints.Unsigned] struct {
	values mapset.Set[E]
}

func (ft structFieldEnum[E]) EncodeValue(v E) Field {
	if !ft.values.Has(v) {
		return FieldError(fmt.Errorf("%v: %w", v, ErrEnum))
	}
	return NNI(v).Field()
}

func (ft structFieldEnum[E]) DecodeValue(de DecodingElement) (v E, e error) {
	n, e := de.NNI()
	if e != nil {
		return 0, e
	}
	if v = E(n); uint64(v) != n || !ft.values.Has(v) {
		return 0, fmt.Errorf("%d: %w", n, ErrEnum)
	}
	return v, nil
}

func (structFieldEnum[E]) String(v E) string {
	return fmt.Sprint(v)
}

// StructFieldEnum returns a field type of NonNegativeInteger restricted to a set of values.
// Decoding any other value fails with ErrEnum; encoding any other value yields an error Field.
func StructFieldEnum[E constraints.Unsigned](values ...E) StructFieldType[E] {
	ft := structFieldEnum[E]{values: mapset.New[E]()}
	for _, v := range values {
		ft.values.Put(v)
	}
	return ft
}

type structFieldNested[V any] struct {
	t *StructType[V]
}

func (ft structFieldNested[V]) EncodeValue(v V) Field {
	return ft.t.EncodeValue(&v)
}

func (ft structFieldNested[V]) DecodeValue(de DecodingElement) (v V, e error) {
	e = ft.t.DecodeValue(&v, de.Value)
	return
}

func (ft structFieldNested[V]) String(v V) string {
	return ft.t.String(&v)
}

// StructFieldNested returns a field type of a nested struct.
// The enclosing TLV-TYPE comes from the field, not from the nested StructType.
func StructFieldNested[V any](t *StructType[V]) StructFieldType[V] {
	return structFieldNested[V]{t: t}
}
