package ndn

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

const digestLength = 32

var (
	unescapedChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~")
	hexChars       = []byte("0123456789ABCDEF")
)

var digestPrefixes = map[uint32]string{
	an.TtImplicitSha256DigestComponent:   "sha256digest",
	an.TtParametersSha256DigestComponent: "params-sha256",
}

func isValidNameComponentType(typ uint32) bool {
	return typ >= 1 && typ <= 65535
}

// NameComponent represents a name component.
// The zero NameComponent is invalid.
type NameComponent struct {
	tlv.Element
}

var (
	_ tlv.Fielder     = NameComponent{}
	_ tlv.Unmarshaler = (*NameComponent)(nil)
)

// MakeNameComponent constructs a NameComponent from TLV-TYPE and TLV-VALUE.
func MakeNameComponent(typ uint32, value []byte) NameComponent {
	return NameComponent{tlv.MakeElement(typ, value)}
}

// NameComponentFrom constructs a NameComponent from TLV-TYPE and a Fielder that encodes TLV-VALUE.
// If value encodes to an error, it returns an invalid NameComponent.
//
//	NameComponentFrom(an.TtVersionNameComponent, tlv.NNI(1))
func NameComponentFrom(typ uint32, value tlv.Fielder) NameComponent {
	v, e := value.Field().Encode(nil)
	if e != nil {
		return NameComponent{}
	}
	return MakeNameComponent(typ, v)
}

// Valid checks whether this component has a valid TLV-TYPE and, for digest components, TLV-LENGTH.
func (comp NameComponent) Valid() bool {
	if _, ok := digestPrefixes[comp.Type]; ok && comp.Length() != digestLength {
		return false
	}
	return isValidNameComponentType(comp.Type)
}

// Equal determines whether two components are the same.
func (comp NameComponent) Equal(other NameComponent) bool {
	return comp.Compare(other) == 0
}

// Compare returns negative when comp<other, zero when comp==other, positive when comp>other.
// Components are ordered by TLV-TYPE, then TLV-LENGTH, then TLV-VALUE.
func (comp NameComponent) Compare(other NameComponent) int {
	if d := int(comp.Type) - int(other.Type); d != 0 {
		return d
	}
	if d := comp.Length() - other.Length(); d != 0 {
		return d
	}
	return bytes.Compare(comp.Value, other.Value)
}

// Field implements tlv.Fielder interface.
func (comp NameComponent) Field() tlv.Field {
	if !isValidNameComponentType(comp.Type) {
		return tlv.FieldError(ErrComponentType)
	}
	return comp.Element.Field()
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (comp *NameComponent) UnmarshalTLV(typ uint32, value []byte) error {
	if !isValidNameComponentType(typ) {
		return ErrComponentType
	}
	if _, ok := digestPrefixes[typ]; ok && len(value) != digestLength {
		return ErrDigestLength
	}
	comp.Type, comp.Value = typ, value
	return nil
}

// String returns URI representation of this component.
func (comp NameComponent) String() string {
	var b strings.Builder
	comp.writeStringTo(&b)
	return b.String()
}

func (comp NameComponent) writeStringTo(w *strings.Builder) {
	if prefix, ok := digestPrefixes[comp.Type]; ok {
		w.WriteString(prefix)
		w.WriteByte('=')
		w.WriteString(hex.EncodeToString(comp.Value))
		return
	}

	if comp.Type != an.TtGenericNameComponent {
		w.WriteString(strconv.FormatUint(uint64(comp.Type), 10))
		w.WriteByte('=')
	}

	allPeriods := true
	for _, ch := range comp.Value {
		allPeriods = allPeriods && ch == '.'
		if bytes.IndexByte(unescapedChars, ch) >= 0 {
			w.WriteByte(ch)
		} else {
			w.Write([]byte{'%', hexChars[ch>>4], hexChars[ch&0x0F]})
		}
	}
	if allPeriods {
		w.WriteString("...")
	}
}

// ParseNameComponent parses URI representation of name component.
// It uses best effort and can accept any input.
func ParseNameComponent(input string) (comp NameComponent) {
	comp.Type = an.TtGenericNameComponent
	if typS, valS, hasTyp := strings.Cut(input, "="); hasTyp {
		for typ, prefix := range digestPrefixes {
			if typS == prefix {
				if v, e := hex.DecodeString(valS); e == nil {
					return MakeNameComponent(typ, v)
				}
			}
		}

		if typ64, e := strconv.ParseUint(typS, 10, 32); e == nil && isValidNameComponentType(uint32(typ64)) {
			comp.Type = uint32(typ64)
			input = valS
		}
	}

	if len(input) >= 3 && strings.TrimRight(input, ".") == "" {
		comp.Value = []byte(input)[3:]
		return comp
	}

	value := make([]byte, 0, len(input))
	for i := 0; i < len(input); {
		ch := input[i]
		if ch == '%' && i+3 <= len(input) {
			if b, e := strconv.ParseUint(input[i+1:i+3], 16, 8); e == nil {
				value = append(value, byte(b))
				i += 3
				continue
			}
		}
		value = append(value, ch)
		i++
	}
	comp.Value = value
	return comp
}
