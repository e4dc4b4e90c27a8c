package tlv

import (
	"fmt"

	binutils "github.com/jfoster/binary-utilities"
	"github.com/pkg/math"
)

// growHeadroom is the minimum free space after a reallocation.
const growHeadroom = 1024

// Encoder is a TLV encoding buffer that grows toward the front.
//
// Content is written back to front: the last field of an element is prepended first, and the
// TLV-TYPE and TLV-LENGTH are prepended after the TLV-VALUE is complete.
// This allows nested elements to be encoded without computing their lengths in advance.
//
// The zero Encoder is an empty buffer.
// An Encoder must not be used concurrently.
type Encoder struct {
	buf   []byte
	off   int
	marks []int
	err   error
}

// NewEncoder creates an Encoder with initial capacity.
func NewEncoder(capacity int) *Encoder {
	return &Encoder{
		buf: make([]byte, capacity),
		off: capacity,
	}
}

// Size returns number of octets written so far.
func (enc *Encoder) Size() int {
	return len(enc.buf) - enc.off
}

// Headroom returns number of octets that can be prepended without reallocation.
func (enc *Encoder) Headroom() int {
	return enc.off
}

// Err returns the first error encountered.
func (enc *Encoder) Err() error {
	return enc.err
}

// Reset discards content and pending marks, but keeps the buffer.
func (enc *Encoder) Reset() {
	enc.off = len(enc.buf)
	enc.marks = enc.marks[:0]
	enc.err = nil
}

// Output returns encoded content and the first error encountered.
// It fails with ErrUnbalanced if a BeginValue is still pending.
// The returned slice is valid until the next mutating call on the Encoder.
func (enc *Encoder) Output() (wire []byte, e error) {
	if enc.err != nil {
		return nil, enc.err
	}
	if n := len(enc.marks); n > 0 {
		return nil, fmt.Errorf("%d pending BeginValue: %w", n, ErrUnbalanced)
	}
	return enc.buf[enc.off:], nil
}

// Prepend allocates n octets in front of existing content.
// The returned slice should be filled by the caller.
// It is valid until the next mutating call on the Encoder.
func (enc *Encoder) Prepend(n int) (room []byte) {
	if n < 0 {
		panic(fmt.Errorf("Encoder.Prepend(%d)", n))
	}
	if n > enc.off {
		enc.grow(n)
	}
	enc.off -= n
	return enc.buf[enc.off : enc.off+n : enc.off+n]
}

// grow reallocates so that at least n octets are available in front of existing content.
// New capacity is a power of two.
func (enc *Encoder) grow(n int) {
	size := enc.Size()
	capacity := int(binutils.NextPowerOfTwo(int64(math.MaxInt(2*len(enc.buf), size+n+growHeadroom))))
	buf := make([]byte, capacity)
	copy(buf[capacity-size:], enc.buf[enc.off:])
	enc.buf, enc.off = buf, capacity-size
}

// PrependBytes prepends a copy of b.
func (enc *Encoder) PrependBytes(b []byte) {
	copy(enc.Prepend(len(b)), b)
}

// PrependTypeLength prepends TLV-TYPE and TLV-LENGTH.
// It fails if either number exceeds MaxVarNum, in which case nothing is written.
func (enc *Encoder) PrependTypeLength(typ, length uint64) error {
	if typ < minType || typ > maxType {
		return enc.setErr(ErrType)
	}
	if !VarNum(length).Valid() {
		return enc.setErr(fmt.Errorf("TLV-LENGTH %d: %w", length, ErrRange))
	}

	vt, vl := VarNum(typ), VarNum(length)
	room := enc.Prepend(vt.Size() + vl.Size())
	vt.Prepend(room[:vt.Size()])
	vl.Prepend(room[vt.Size():])
	return nil
}

// BeginValue marks the end of a TLV-VALUE about to be prepended.
// It must be paired with EndValue.
func (enc *Encoder) BeginValue() {
	enc.marks = append(enc.marks, enc.Size())
}

// EndValue completes the TLV-VALUE started by the most recent BeginValue,
// and prepends TLV-TYPE and TLV-LENGTH in front of it.
// It panics if there is no pending BeginValue.
func (enc *Encoder) EndValue(typ uint32) {
	mark := enc.popMark()
	if enc.err != nil {
		return
	}
	enc.PrependTypeLength(uint64(typ), uint64(enc.Size()-mark))
}

func (enc *Encoder) popMark() (mark int) {
	last := len(enc.marks) - 1
	if last < 0 {
		panic(ErrUnbalanced)
	}
	mark = enc.marks[last]
	enc.marks = enc.marks[:last]
	return mark
}

// PrependTLV prepends a TLV element whose TLV-VALUE consists of the given fields in order.
func (enc *Encoder) PrependTLV(typ uint32, values ...Fielder) {
	enc.BeginValue()
	enc.PrependFrom(values...)
	enc.EndValue(typ)
}

// PrependFrom prepends a sequence of fields.
// After this operation, the fields appear in the given order in front of existing content.
func (enc *Encoder) PrependFrom(fields ...Fielder) {
	for i := len(fields) - 1; i >= 0; i-- {
		enc.PrependField(fields[i].Field())
	}
}

// PrependField prepends a field.
// If the field generates an error, it is accumulated in the Encoder.
func (enc *Encoder) PrependField(f Field) {
	if enc.err != nil {
		return
	}

	switch f.typ {
	case fieldTypeEmpty:
	case fieldTypeError:
		enc.setErr(f.object.(error))
	case fieldTypeFunc:
		b, e := f.object.(func([]byte) ([]byte, error))(nil)
		if e != nil {
			enc.setErr(e)
			return
		}
		enc.PrependBytes(b)
	case fieldTypeEncoderFunc:
		f.object.(func(*Encoder))(enc)
	case fieldTypeBytes:
		enc.PrependBytes(f.object.([]byte))
	case fieldTypeNNI:
		NNI(f.integer).Prepend(enc)
	case fieldTypeTLVFields:
		subs := f.object.([]Field)
		enc.prependNested(f.integer, len(subs), func(i int) Field { return subs[i] })
	case fieldTypeTLVFielders:
		subs := f.object.([]Fielder)
		enc.prependNested(f.integer, len(subs), func(i int) Field { return subs[i].Field() })
	default:
		panic(f.typ)
	}
}

func (enc *Encoder) prependNested(typ uint64, n int, sub func(i int) Field) {
	enc.BeginValue()
	for i := n - 1; i >= 0; i-- {
		enc.PrependField(sub(i))
	}
	if typ == valueOnly {
		enc.popMark()
		return
	}
	enc.EndValue(uint32(typ))
}

func (enc *Encoder) setErr(e error) error {
	if enc.err == nil {
		enc.err = e
	}
	return e
}
