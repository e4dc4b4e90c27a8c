package tlv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/usnistgov/ndntlv/core/optional"
	"golang.org/x/exp/slices"
)

// StructFieldOption customizes a field in StructBuilder.
type StructFieldOption func(opts *structFieldOptions)

type structFieldOptions struct {
	required bool
	order    int
}

// StructRequired marks a field as required when decoding.
func StructRequired() StructFieldOption {
	return func(opts *structFieldOptions) { opts.required = true }
}

// StructOrder assigns an explicit Order to a field.
// By default, fields are ordered as they are added.
func StructOrder(order int) StructFieldOption {
	return func(opts *structFieldOptions) { opts.order = order }
}

type structRow[R any] struct {
	tt     uint32
	key    string
	order  int
	encode func(r *R, fields []Field) []Field
	has    func(r *R) bool
	str    func(r *R) string
	// count returns number of values in a repeated field; nil for a non-repeated field.
	count func(r *R) int
}

func (t *StructType[R]) findRow(order int) *structRow[R] {
	for i := range t.rows {
		if t.rows[i].order == order {
			return &t.rows[i]
		}
	}
	return nil
}

type structFlag[R any] struct {
	get func(r *R) *optional.Optional[uint64]
	bit uint64
}

// StructType is a structured record type, created by StructBuilder.
// It encodes and decodes records of type R.
type StructType[R any] struct {
	title   string
	topType uint32
	rows    []structRow[R]
	evd     *EvDecoder[*R]
	flags   map[string]structFlag[R]
	ext     func(r *R) *Extensions
}

// Title returns the record type name.
func (t *StructType[R]) Title() string {
	return t.title
}

// TLVType returns the TLV-TYPE of the outer element, or zero if the record only defines TLV-VALUE.
func (t *StructType[R]) TLVType() uint32 {
	return t.topType
}

// Keys returns field keys in encoding order.
func (t *StructType[R]) Keys() (keys []string) {
	for _, row := range t.rows {
		keys = append(keys, row.key)
	}
	return keys
}

// Has determines whether a field is present in the record.
// A repeated field is present if it has at least one value.
// It returns false if key is not a declared field.
func (t *StructType[R]) Has(r *R, key string) bool {
	for _, row := range t.rows {
		if row.key == key {
			return row.has(r)
		}
	}
	return false
}

// PresentKeys returns keys of present fields in encoding order.
func (t *StructType[R]) PresentKeys(r *R) (keys []string) {
	for _, row := range t.rows {
		if row.has(r) {
			keys = append(keys, row.key)
		}
	}
	return keys
}

// Encode creates a Field that encodes the record as a TLV element.
// If the record type has no outer TLV-TYPE, this is the same as EncodeValue.
func (t *StructType[R]) Encode(r *R) Field {
	if t.topType == 0 {
		return t.EncodeValue(r)
	}
	return TLV(t.topType, t.valueFields(r)...)
}

// EncodeValue creates a Field that encodes the record as TLV-VALUE.
func (t *StructType[R]) EncodeValue(r *R) Field {
	return Sequence(t.valueFields(r)...)
}

func (t *StructType[R]) valueFields(r *R) (fields []Field) {
	var entries []extensionEntry
	if t.ext != nil {
		entries = t.ext(r).sorted()
	}

	fields = make([]Field, 0, len(t.rows)+len(entries))
	for _, row := range t.rows {
		for len(entries) > 0 && entries[0].pos < row.order {
			fields = append(fields, entries[0].Field())
			entries = entries[1:]
		}
		if len(entries) == 0 || entries[0].pos != row.order {
			fields = row.encode(r, fields)
			continue
		}
		for i, f := range row.encode(r, nil) {
			fields = append(fields, f)
			for len(entries) > 0 && entries[0].pos == row.order && entries[0].seq <= i+1 {
				fields = append(fields, entries[0].Field())
				entries = entries[1:]
			}
		}
	}
	for _, entry := range entries {
		fields = append(fields, entry.Field())
	}
	return fields
}

// Decode decodes a buffer that contains exactly one TLV element into the record.
// Existing field values are cleared.
func (t *StructType[R]) Decode(r *R, wire []byte) error {
	var zero R
	*r = zero
	return t.evd.Decode(r, wire)
}

// UnmarshalTLV decodes a TLV element into the record.
// Existing field values are cleared.
func (t *StructType[R]) UnmarshalTLV(r *R, typ uint32, value []byte) error {
	var zero R
	*r = zero
	return t.evd.DecodeElement(r, typ, value)
}

// DecodeValue decodes TLV-VALUE into the record.
// Existing field values are cleared.
func (t *StructType[R]) DecodeValue(r *R, value []byte) error {
	var zero R
	*r = zero
	return t.evd.DecodeValue(r, value)
}

func (t *StructType[R]) findFlag(key string) structFlag[R] {
	f, ok := t.flags[key]
	if !ok {
		panic(fmt.Errorf("%s: unknown flag %s", t.title, key))
	}
	return f
}

// Flag reads a named flag bit.
// An absent flags field reads as false.
// It panics if key is not a declared flag.
func (t *StructType[R]) Flag(r *R, key string) bool {
	f := t.findFlag(key)
	v, _ := f.get(r).Get()
	return v&f.bit == f.bit
}

// SetFlag writes a named flag bit.
// If the flags field is absent, it is initialized to zero first.
// It panics if key is not a declared flag.
func (t *StructType[R]) SetFlag(r *R, key string, v bool) {
	f := t.findFlag(key)
	field := f.get(r)
	n := field.GetOr(0)
	if v {
		n |= f.bit
	} else {
		n &^= f.bit
	}
	field.Set(n)
}

// String formats the record, listing present fields.
func (t *StructType[R]) String(r *R) string {
	var b strings.Builder
	b.WriteString(t.title)
	b.WriteByte('(')
	delim := ""
	for _, row := range t.rows {
		if row.has(r) {
			fmt.Fprintf(&b, "%s%s=%s", delim, row.key, row.str(r))
			delim = ", "
		}
	}
	if t.ext != nil {
		if n := t.ext(r).Len(); n > 0 {
			fmt.Fprintf(&b, "%sextensions=%d", delim, n)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// StructBuilder declares fields of a StructType.
//
// Fields are added with StructAdd, StructAddOptional, StructAddRepeated, and StructAddFlags.
// The order in which fields are added is both the decoding order constraint and the encoding order.
type StructBuilder[R any] struct {
	t         *StructType[R]
	nextOrder int
	keys      map[string]bool
}

// NewStructBuilder creates a StructBuilder.
// title is the record type name used in error messages.
// topType is the TLV-TYPE of the outer element, or zero if the record is only used as TLV-VALUE.
func NewStructBuilder[R any](title string, topType uint32) *StructBuilder[R] {
	var topTypes []uint32
	if topType != 0 {
		topTypes = append(topTypes, topType)
	}
	return &StructBuilder[R]{
		t: &StructType[R]{
			title:   title,
			topType: topType,
			evd:     NewEvDecoder[*R](title, topTypes...),
			flags:   map[string]structFlag[R]{},
		},
		keys: map[string]bool{},
	}
}

// SetIsCritical changes the criticality rule for unrecognized TLV-TYPEs.
func (b *StructBuilder[R]) SetIsCritical(f IsCritical) *StructBuilder[R] {
	b.t.evd.SetIsCritical(f)
	return b
}

// WithExtensions makes the record extensible.
// get locates the Extensions embedded in the record.
// Fields in reg, which may be nil, are recognized and decoded into Extensions.
// Other unrecognized elements, critical or not, are captured into Extensions and re-encoded at
// the same position relative to record fields.
func (b *StructBuilder[R]) WithExtensions(get func(r *R) *Extensions, reg *ExtensionRegistry) *StructBuilder[R] {
	for _, f := range reg.Fields() {
		f := f
		b.t.evd.Add(f.TLVType(), func(r *R, de DecodingElement) error {
			v, e := f.decodeAny(de)
			if e != nil {
				return e
			}
			get(r).set(f, v)
			return nil
		}, EvdRule{Order: f.Order()})
	}
	t := b.t
	b.t.evd.SetUnknown(func(r *R, de DecodingElement, lastOrder int) bool {
		seq := 0
		if row := t.findRow(lastOrder); row != nil {
			seq = 1
			if row.count != nil {
				seq = row.count(r)
			}
		}
		get(r).capture(de, lastOrder, seq)
		return true
	})
	b.t.ext = get
	return b
}

// Build returns the StructType.
// The builder should not be used afterwards.
func (b *StructBuilder[R]) Build() *StructType[R] {
	return b.t
}

func (b *StructBuilder[R]) addRow(row structRow[R], repeat bool, opts []StructFieldOption, h EvdHandler[*R]) {
	if b.keys[row.key] {
		panic(fmt.Errorf("%s: duplicate field %s", b.t.title, row.key))
	}
	b.keys[row.key] = true

	var o structFieldOptions
	for _, opt := range opts {
		opt(&o)
	}
	if row.order = o.order; row.order == 0 {
		b.nextOrder += autoOrderStep
		row.order = b.nextOrder
	}

	b.t.evd.Add(row.tt, h, EvdRule{Order: row.order, Required: o.required, Repeat: repeat})
	i, _ := slices.BinarySearchFunc(b.t.rows, row.order+1, func(r structRow[R], order int) int { return r.order - order })
	b.t.rows = slices.Insert(b.t.rows, i, row)
}

// StructAdd adds a field whose value is always present.
func StructAdd[R, V any](b *StructBuilder[R], tt uint32, key string, ft StructFieldType[V],
	get func(r *R) *V, opts ...StructFieldOption) {
	b.addRow(structRow[R]{
		tt:  tt,
		key: key,
		encode: func(r *R, fields []Field) []Field {
			return append(fields, TLV(tt, ft.EncodeValue(*get(r))))
		},
		has: func(r *R) bool { return true },
		str: func(r *R) string { return ft.String(*get(r)) },
	}, false, opts, func(r *R, de DecodingElement) (e error) {
		*get(r), e = ft.DecodeValue(de)
		return e
	})
}

// StructAddOptional adds a field whose value may be absent.
func StructAddOptional[R, V any](b *StructBuilder[R], tt uint32, key string, ft StructFieldType[V],
	get func(r *R) *optional.Optional[V], opts ...StructFieldOption) {
	b.addRow(structRow[R]{
		tt:  tt,
		key: key,
		encode: func(r *R, fields []Field) []Field {
			if v, ok := get(r).Get(); ok {
				fields = append(fields, TLV(tt, ft.EncodeValue(v)))
			}
			return fields
		},
		has: func(r *R) bool { return get(r).IsSet() },
		str: func(r *R) string { return ft.String(get(r).Unwrap()) },
	}, false, opts, func(r *R, de DecodingElement) error {
		v, e := ft.DecodeValue(de)
		if e != nil {
			return e
		}
		get(r).Set(v)
		return nil
	})
}

// StructAddRepeated adds a field that may appear zero or more times.
func StructAddRepeated[R, V any](b *StructBuilder[R], tt uint32, key string, ft StructFieldType[V],
	get func(r *R) *[]V, opts ...StructFieldOption) {
	b.addRow(structRow[R]{
		tt:  tt,
		key: key,
		encode: func(r *R, fields []Field) []Field {
			for _, v := range *get(r) {
				fields = append(fields, TLV(tt, ft.EncodeValue(v)))
			}
			return fields
		},
		has: func(r *R) bool { return len(*get(r)) > 0 },
		str: func(r *R) string {
			list := *get(r)
			tokens := make([]string, len(list))
			for i, v := range list {
				tokens[i] = ft.String(v)
			}
			return "[" + strings.Join(tokens, ", ") + "]"
		},
		count: func(r *R) int { return len(*get(r)) },
	}, true, opts, func(r *R, de DecodingElement) error {
		v, e := ft.DecodeValue(de)
		if e != nil {
			return e
		}
		list := get(r)
		*list = append(*list, v)
		return nil
	})
}

// StructAddBool adds a boolean field represented by the presence of an empty TLV element.
// A true value encodes as a zero-length element; false encodes nothing.
// Decoding ignores the TLV-VALUE.
func StructAddBool[R any](b *StructBuilder[R], tt uint32, key string,
	get func(r *R) *bool, opts ...StructFieldOption) {
	b.addRow(structRow[R]{
		tt:  tt,
		key: key,
		encode: func(r *R, fields []Field) []Field {
			if *get(r) {
				fields = append(fields, TLV(tt))
			}
			return fields
		},
		has: func(r *R) bool { return *get(r) },
		str: func(r *R) string { return strconv.FormatBool(*get(r)) },
	}, false, opts, func(r *R, de DecodingElement) error {
		*get(r) = true
		return nil
	})
}

// StructAddFlags adds an optional NonNegativeInteger field that is a bitmask of named flags.
// If prefix is not empty, each flag becomes accessible via StructType.Flag and StructType.SetFlag,
// with the key being prefix followed by the flag name.
// It panics if a flag key collides with another flag key of the same record type.
func StructAddFlags[R any](b *StructBuilder[R], tt uint32, key string, prefix string, bits FlagBits,
	get func(r *R) *optional.Optional[uint64], opts ...StructFieldOption) {
	StructAddOptional[R, uint64](b, tt, key, structFieldFlags{bits}, get, opts...)
	if prefix == "" {
		return
	}
	for name, bit := range bits {
		flagKey := prefix + name
		if _, ok := b.t.flags[flagKey]; ok {
			panic(fmt.Errorf("%s: duplicate flag %s", b.t.title, flagKey))
		}
		b.t.flags[flagKey] = structFlag[R]{get: get, bit: bit}
	}
}

type structFieldFlags struct {
	bits FlagBits
}

func (structFieldFlags) EncodeValue(v uint64) Field {
	return NNI(v).Field()
}

func (structFieldFlags) DecodeValue(de DecodingElement) (uint64, error) {
	return de.NNI()
}

func (ft structFieldFlags) String(v uint64) string {
	return ft.bits.String(v)
}
