package tlv

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/slices"
)

// ExtensionField is an application-defined field of an extensible record.
// It is implemented by *Extension[V].
type ExtensionField interface {
	// TLVType returns the TLV-TYPE of this field.
	TLVType() uint32
	// Order returns the position of this field relative to the record fields.
	Order() int

	decodeAny(de DecodingElement) (any, error)
	encodeAny(v any) Field
}

// Extension is a typed ExtensionField.
type Extension[V any] struct {
	typ   uint32
	order int
	kind  StructFieldType[V]
}

var _ ExtensionField = (*Extension[uint64])(nil)

// NewExtension creates an extension field.
// order must be positive; it is compared with the Order of record fields.
func NewExtension[V any](typ uint32, order int, kind StructFieldType[V]) *Extension[V] {
	if order <= 0 {
		panic(fmt.Errorf("extension 0x%X: order must be positive", typ))
	}
	return &Extension[V]{typ: typ, order: order, kind: kind}
}

// TLVType implements ExtensionField interface.
func (ext *Extension[V]) TLVType() uint32 {
	return ext.typ
}

// Order implements ExtensionField interface.
func (ext *Extension[V]) Order() int {
	return ext.order
}

func (ext *Extension[V]) decodeAny(de DecodingElement) (any, error) {
	return ext.kind.DecodeValue(de)
}

func (ext *Extension[V]) encodeAny(v any) Field {
	return TLV(ext.typ, ext.kind.EncodeValue(v.(V)))
}

// Get retrieves the value of this extension from a record.
func (ext *Extension[V]) Get(x *Extensions) (v V, ok bool) {
	if i := x.find(ext); i >= 0 {
		return x.entries[i].value.(V), true
	}
	return v, false
}

// Set assigns the value of this extension on a record.
func (ext *Extension[V]) Set(x *Extensions, v V) {
	x.set(ext, v)
}

// Unset removes this extension from a record.
func (ext *Extension[V]) Unset(x *Extensions) {
	if i := x.find(ext); i >= 0 {
		x.entries = slices.Delete(x.entries, i, i+1)
	}
}

// ExtensionRegistry is a set of extension fields recognized by an extensible record type.
type ExtensionRegistry struct {
	fields []ExtensionField
	types  mapset.Set[uint32]
}

// NewExtensionRegistry creates an ExtensionRegistry.
func NewExtensionRegistry(fields ...ExtensionField) *ExtensionRegistry {
	reg := &ExtensionRegistry{types: mapset.New[uint32]()}
	reg.Register(fields...)
	return reg
}

// Register adds extension fields.
// It panics if a TLV-TYPE is already registered.
func (reg *ExtensionRegistry) Register(fields ...ExtensionField) *ExtensionRegistry {
	for _, f := range fields {
		if reg.types.Has(f.TLVType()) {
			panic(fmt.Errorf("duplicate extension 0x%X", f.TLVType()))
		}
		reg.types.Put(f.TLVType())
		reg.fields = append(reg.fields, f)
	}
	return reg
}

// Fields returns registered extension fields.
func (reg *ExtensionRegistry) Fields() []ExtensionField {
	if reg == nil {
		return nil
	}
	return reg.fields
}

type extensionEntry struct {
	pos int
	// seq is the number of elements of the field at pos that precede a captured element.
	seq     int
	field   ExtensionField
	value   any
	element Element
}

func (entry extensionEntry) Field() Field {
	if entry.field == nil {
		return entry.element.Field()
	}
	return entry.field.encodeAny(entry.value)
}

// Extensions holds extension fields and unrecognized elements of an extensible record.
// Records embed this struct to participate in StructBuilder.WithExtensions.
// The zero Extensions is empty.
type Extensions struct {
	entries []extensionEntry
}

// Unrecognized returns elements that were captured during decoding because no rule recognized them.
// The elements refer to the decoder input buffer.
func (x *Extensions) Unrecognized() (list []Element) {
	for _, entry := range x.entries {
		if entry.field == nil {
			list = append(list, entry.element)
		}
	}
	return list
}

// Len returns number of extension fields and unrecognized elements.
func (x *Extensions) Len() int {
	return len(x.entries)
}

// Clear deletes all extension fields and unrecognized elements.
func (x *Extensions) Clear() {
	x.entries = nil
}

func (x *Extensions) find(f ExtensionField) int {
	return slices.IndexFunc(x.entries, func(entry extensionEntry) bool { return entry.field == f })
}

func (x *Extensions) set(f ExtensionField, v any) {
	entry := extensionEntry{pos: f.Order(), field: f, value: v}
	if i := x.find(f); i >= 0 {
		x.entries[i] = entry
		return
	}
	x.entries = append(x.entries, entry)
}

func (x *Extensions) capture(de DecodingElement, lastOrder, seq int) {
	x.entries = append(x.entries, extensionEntry{pos: lastOrder, seq: seq, element: de.Element})
}

// sorted returns entries sorted by position, preserving decoding order among equal positions.
func (x *Extensions) sorted() []extensionEntry {
	entries := slices.Clone(x.entries)
	slices.SortStableFunc(entries, func(a, b extensionEntry) int { return a.pos - b.pos })
	return entries
}
