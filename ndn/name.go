package ndn

import (
	"encoding"
	"strings"

	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

// Name represents a name.
// The zero Name has zero components.
type Name []NameComponent

var (
	_ tlv.Fielder                = Name{}
	_ tlv.Unmarshaler            = (*Name)(nil)
	_ encoding.BinaryMarshaler   = Name{}
	_ encoding.BinaryUnmarshaler = (*Name)(nil)
	_ encoding.TextMarshaler     = Name{}
	_ encoding.TextUnmarshaler   = (*Name)(nil)
)

// Length returns TLV-LENGTH.
// Use len(name) to get number of components.
func (name Name) Length() (sum int) {
	for _, comp := range name {
		sum += comp.Size()
	}
	return sum
}

// Get returns i-th component.
// If negative, count from the end.
// If out-of-range, return invalid NameComponent.
func (name Name) Get(i int) NameComponent {
	if i < 0 {
		i += len(name)
	}
	if i < 0 || i >= len(name) {
		return NameComponent{}
	}
	return name[i]
}

// GetPrefix returns a prefix of i components.
// If negative, count from the end.
func (name Name) GetPrefix(i int) Name {
	if i < 0 {
		i += len(name)
	}
	return name[:max(0, min(i, len(name)))]
}

// Append appends zero or more components to a copy of this name.
func (name Name) Append(comps ...NameComponent) Name {
	a := make(Name, 0, len(name)+len(comps))
	a = append(a, name...)
	return append(a, comps...)
}

// Equal determines whether two names are the same.
func (name Name) Equal(other Name) bool {
	return len(name) == len(other) && name.compareCommonPrefix(other) == 0
}

// Compare returns negative when name<other, zero when name==other, positive when name>other.
func (name Name) Compare(other Name) int {
	if d := name.compareCommonPrefix(other); d != 0 {
		return d
	}
	return len(name) - len(other)
}

// IsPrefixOf returns true if this name is a prefix of other name.
func (name Name) IsPrefixOf(other Name) bool {
	return len(name) <= len(other) && name.compareCommonPrefix(other) == 0
}

func (name Name) compareCommonPrefix(other Name) int {
	for i, n := 0, min(len(name), len(other)); i < n; i++ {
		if d := name[i].Compare(other[i]); d != 0 {
			return d
		}
	}
	return 0
}

func (name Name) componentFields() []tlv.Field {
	fields := make([]tlv.Field, len(name))
	for i, comp := range name {
		fields[i] = comp.Field()
	}
	return fields
}

// Field implements tlv.Fielder interface.
func (name Name) Field() tlv.Field {
	return tlv.TLV(an.TtName, name.componentFields()...)
}

// MarshalBinary encodes TLV-VALUE of this name.
func (name Name) MarshalBinary() (value []byte, e error) {
	return tlv.Encode(name.componentFields()...)
}

// UnmarshalBinary decodes TLV-VALUE from wire format.
// Decoded components refer to the input buffer.
func (name *Name) UnmarshalBinary(wire []byte) error {
	*name = Name{}
	for d := tlv.DecodingBuffer(wire); !d.EOF(); {
		de, e := d.Element()
		if e != nil {
			return e
		}
		var comp NameComponent
		if e := de.Unmarshal(&comp); e != nil {
			return e
		}
		*name = append(*name, comp)
	}
	return nil
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (name *Name) UnmarshalTLV(typ uint32, value []byte) error {
	if typ != an.TtName {
		return tlv.ErrTypeExpect(an.TtName, typ)
	}
	return name.UnmarshalBinary(value)
}

// MarshalText implements encoding.TextMarshaler interface.
func (name Name) MarshalText() (text []byte, e error) {
	return []byte(name.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler interface.
func (name *Name) UnmarshalText(text []byte) error {
	*name = ParseName(string(text))
	return nil
}

// String returns URI representation of this name.
func (name Name) String() string {
	if len(name) == 0 {
		return "/"
	}
	var w strings.Builder
	for _, comp := range name {
		w.WriteByte('/')
		comp.writeStringTo(&w)
	}
	return w.String()
}

// ParseName parses URI representation of name.
// It uses best effort and can accept any input.
func ParseName(input string) (name Name) {
	input = strings.TrimPrefix(input, "ndn:")
	for _, token := range strings.Split(input, "/") {
		if token != "" {
			name = append(name, ParseNameComponent(token))
		}
	}
	return name
}
