package nfdmgmt

import (
	"fmt"

	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

// ControlResponse represents NFD management ControlResponse.
type ControlResponse struct {
	StatusCode uint16
	StatusText string
	// Body is the TLV elements after StatusText, such as ControlParameters.
	Body []byte
}

var (
	_ tlv.Fielder     = ControlResponse{}
	_ tlv.Unmarshaler = (*ControlResponse)(nil)
)

const (
	orderStatusCode = 1
	orderStatusText = 2
)

var controlResponseEvd = tlv.NewEvDecoder[*ControlResponse]("ControlResponse", an.TtControlResponse).
	Add(an.TtStatusCode, func(cr *ControlResponse, de tlv.DecodingElement) (e error) {
		cr.StatusCode = uint16(de.UnmarshalNNI(999, &e, tlv.ErrRange))
		return e
	}, tlv.EvdRule{Order: orderStatusCode, Required: true}).
	Add(an.TtStatusText, func(cr *ControlResponse, de tlv.DecodingElement) (e error) {
		cr.StatusText, e = de.Text()
		return e
	}, tlv.EvdRule{Order: orderStatusText, Required: true}).
	SetUnknown(func(cr *ControlResponse, de tlv.DecodingElement, lastOrder int) bool {
		if lastOrder < orderStatusText {
			return false
		}
		cr.Body = append(cr.Body, de.Wire...)
		return true
	})

// Field implements tlv.Fielder interface.
func (cr ControlResponse) Field() tlv.Field {
	return tlv.TLV(an.TtControlResponse,
		tlv.TLVNNI(an.TtStatusCode, cr.StatusCode),
		tlv.TLVBytes(an.TtStatusText, []byte(cr.StatusText)),
		tlv.Bytes(cr.Body),
	)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (cr *ControlResponse) UnmarshalTLV(typ uint32, value []byte) error {
	*cr = ControlResponse{}
	return controlResponseEvd.DecodeElement(cr, typ, value)
}

// OK determines whether the status code indicates success.
func (cr ControlResponse) OK() bool {
	return cr.StatusCode >= 200 && cr.StatusCode <= 299
}

// Err returns an error if the status code does not indicate success.
func (cr ControlResponse) Err() error {
	if cr.OK() {
		return nil
	}
	return fmt.Errorf("%w %d %s", ErrStatus, cr.StatusCode, cr.StatusText)
}

// Parameters decodes ControlParameters from the body.
func (cr ControlResponse) Parameters() (p ControlParameters, e error) {
	e = tlv.Decode(cr.Body, &p)
	return
}

func (cr ControlResponse) String() string {
	return fmt.Sprintf("ControlResponse(%d %s, body=%d)", cr.StatusCode, cr.StatusText, len(cr.Body))
}
