package keychain

import (
	"encoding"
	"fmt"
	"time"

	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

const validityPeriodTimeFormat = "20060102T150405"

type structFieldTime struct{}

func (structFieldTime) EncodeValue(v time.Time) tlv.Field {
	return tlv.Bytes([]byte(v.UTC().Format(validityPeriodTimeFormat)))
}

func (structFieldTime) DecodeValue(de tlv.DecodingElement) (time.Time, error) {
	t, e := time.ParseInLocation(validityPeriodTimeFormat, string(de.Value), time.UTC)
	if e != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrValidityPeriod, e)
	}
	return t, nil
}

func (structFieldTime) String(v time.Time) string {
	return v.UTC().Format(validityPeriodTimeFormat)
}

// ValidityPeriod contains certificate validity period.
// Timestamps have second precision and are encoded in UTC.
type ValidityPeriod struct {
	NotBefore time.Time `json:"notBefore"`
	NotAfter  time.Time `json:"notAfter"`
}

// ValidityPeriodType describes ValidityPeriod encoding.
var ValidityPeriodType = func() *tlv.StructType[ValidityPeriod] {
	b := tlv.NewStructBuilder[ValidityPeriod]("ValidityPeriod", an.TtValidityPeriod)
	tlv.StructAdd(b, an.TtNotBefore, "notBefore", structFieldTime{},
		func(vp *ValidityPeriod) *time.Time { return &vp.NotBefore }, tlv.StructRequired())
	tlv.StructAdd(b, an.TtNotAfter, "notAfter", structFieldTime{},
		func(vp *ValidityPeriod) *time.Time { return &vp.NotAfter }, tlv.StructRequired())
	return b.Build()
}()

// MaxValidityPeriod is a very long ValidityPeriod.
var MaxValidityPeriod = ValidityPeriod{time.Unix(540109800, 0).UTC(), time.Unix(253402300799, 0).UTC()}

// NewValidityPeriod creates a ValidityPeriod that starts now and lasts for d.
func NewValidityPeriod(d time.Duration) ValidityPeriod {
	now := time.Now().UTC().Truncate(time.Second)
	return ValidityPeriod{NotBefore: now, NotAfter: now.Add(d)}
}

var (
	_ tlv.Fielder                = ValidityPeriod{}
	_ tlv.Unmarshaler            = (*ValidityPeriod)(nil)
	_ encoding.BinaryUnmarshaler = (*ValidityPeriod)(nil)
	_ fmt.Stringer               = ValidityPeriod{}
)

// Valid checks whether fields are valid.
func (vp ValidityPeriod) Valid() bool {
	return !vp.NotBefore.IsZero() && !vp.NotAfter.IsZero() && !vp.NotBefore.After(vp.NotAfter)
}

// Includes determines whether the given timestamp is within validity period.
func (vp ValidityPeriod) Includes(t time.Time) bool {
	t = t.Truncate(time.Second)
	return !t.Before(vp.NotBefore) && !t.After(vp.NotAfter)
}

// Field implements tlv.Fielder interface.
func (vp ValidityPeriod) Field() tlv.Field {
	if !vp.Valid() {
		return tlv.FieldError(ErrValidityPeriod)
	}
	return ValidityPeriodType.Encode(&vp)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (vp *ValidityPeriod) UnmarshalTLV(typ uint32, value []byte) error {
	if e := ValidityPeriodType.UnmarshalTLV(vp, typ, value); e != nil {
		return e
	}
	return vp.check()
}

// UnmarshalBinary decodes from TLV-VALUE.
func (vp *ValidityPeriod) UnmarshalBinary(wire []byte) error {
	if e := ValidityPeriodType.DecodeValue(vp, wire); e != nil {
		return e
	}
	return vp.check()
}

func (vp ValidityPeriod) check() error {
	if !vp.Valid() {
		return ErrValidityPeriod
	}
	return nil
}

func (vp ValidityPeriod) String() string {
	return ValidityPeriodType.String(&vp)
}
