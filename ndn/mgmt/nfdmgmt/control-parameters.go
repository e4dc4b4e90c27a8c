package nfdmgmt

import (
	"github.com/usnistgov/ndntlv/core/optional"
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

// Flag bits.
var (
	FaceFlags = tlv.FlagBits{
		"LocalFieldsEnabled":       an.FaceFlagLocalFieldsEnabled,
		"LpReliabilityEnabled":     an.FaceFlagLpReliabilityEnabled,
		"CongestionMarkingEnabled": an.FaceFlagCongestionMarkingEnabled,
	}
	CsFlags = tlv.FlagBits{
		"EnableAdmit": an.CsFlagEnableAdmit,
		"EnableServe": an.CsFlagEnableServe,
	}
	RouteFlags = tlv.FlagBits{
		"ChildInherit": an.RouteFlagChildInherit,
		"Capture":      an.RouteFlagCapture,
	}
)

// FlagPrefix is the prefix of flag keys in ControlParametersType.
const FlagPrefix = "flag"

var facePersistencyValues = []an.FacePersistency{an.PersistencyPersistent, an.PersistencyOnDemand, an.PersistencyPermanent}

// ControlParameters represents NFD management ControlParameters.
type ControlParameters struct {
	Name                          optional.Optional[ndn.Name]           `json:"name"`
	FaceID                        optional.Optional[uint64]             `json:"faceId"`
	URI                           optional.Optional[string]             `json:"uri"`
	LocalURI                      optional.Optional[string]             `json:"localUri"`
	Origin                        optional.Optional[uint64]             `json:"origin"`
	Cost                          optional.Optional[uint64]             `json:"cost"`
	Capacity                      optional.Optional[uint64]             `json:"capacity"`
	Count                         optional.Optional[uint64]             `json:"count"`
	BaseCongestionMarkingInterval optional.Optional[uint64]             `json:"baseCongestionMarkingInterval"`
	DefaultCongestionThreshold    optional.Optional[uint64]             `json:"defaultCongestionThreshold"`
	Mtu                           optional.Optional[uint64]             `json:"mtu"`
	Flags                         optional.Optional[uint64]             `json:"flags"`
	Mask                          optional.Optional[uint64]             `json:"mask"`
	Strategy                      optional.Optional[ndn.Name]           `json:"strategy"`
	ExpirationPeriod              optional.Optional[uint64]             `json:"expirationPeriod"`
	FacePersistency               optional.Optional[an.FacePersistency] `json:"facePersistency"`
}

var (
	_ tlv.Fielder     = ControlParameters{}
	_ tlv.Unmarshaler = (*ControlParameters)(nil)
)

// ControlParametersType describes ControlParameters encoding.
// Unrecognized fields are ignored regardless of TLV-TYPE.
var ControlParametersType = func() *tlv.StructType[ControlParameters] {
	b := tlv.NewStructBuilder[ControlParameters]("ControlParameters", an.TtControlParameters)
	type cp = ControlParameters
	type on = optional.Optional[uint64]
	nni := func(tt uint32, key string, get func(p *cp) *on) {
		tlv.StructAddOptional(b, tt, key, tlv.StructFieldNNI, get)
	}

	tlv.StructAddOptional(b, an.TtName, "name", ndn.StructFieldName, func(p *cp) *optional.Optional[ndn.Name] { return &p.Name })
	nni(an.TtFaceID, "faceId", func(p *cp) *on { return &p.FaceID })
	tlv.StructAddOptional(b, an.TtURI, "uri", tlv.StructFieldText, func(p *cp) *optional.Optional[string] { return &p.URI })
	tlv.StructAddOptional(b, an.TtLocalURI, "localUri", tlv.StructFieldText, func(p *cp) *optional.Optional[string] { return &p.LocalURI })
	nni(an.TtOrigin, "origin", func(p *cp) *on { return &p.Origin })
	nni(an.TtCost, "cost", func(p *cp) *on { return &p.Cost })
	nni(an.TtCapacity, "capacity", func(p *cp) *on { return &p.Capacity })
	nni(an.TtCount, "count", func(p *cp) *on { return &p.Count })
	nni(an.TtBaseCongestionMarkingInterval, "baseCongestionMarkingInterval", func(p *cp) *on { return &p.BaseCongestionMarkingInterval })
	nni(an.TtDefaultCongestionThreshold, "defaultCongestionThreshold", func(p *cp) *on { return &p.DefaultCongestionThreshold })
	nni(an.TtMtu, "mtu", func(p *cp) *on { return &p.Mtu })

	flagBits := tlv.MergeFlagBits(FaceFlags, CsFlags, RouteFlags)
	tlv.StructAddFlags(b, an.TtFlags, "flags", FlagPrefix, flagBits, func(p *cp) *on { return &p.Flags })
	tlv.StructAddFlags(b, an.TtMask, "mask", "", flagBits, func(p *cp) *on { return &p.Mask })

	tlv.StructAddOptional(b, an.TtStrategy, "strategy", ndn.StructFieldNameNested, func(p *cp) *optional.Optional[ndn.Name] { return &p.Strategy })
	nni(an.TtExpirationPeriod, "expirationPeriod", func(p *cp) *on { return &p.ExpirationPeriod })
	tlv.StructAddOptional(b, an.TtFacePersistency, "facePersistency", tlv.StructFieldEnum(facePersistencyValues...),
		func(p *cp) *optional.Optional[an.FacePersistency] { return &p.FacePersistency })

	b.SetIsCritical(tlv.NeverCritical)
	return b.Build()
}()

// Field implements tlv.Fielder interface.
func (p ControlParameters) Field() tlv.Field {
	return ControlParametersType.Encode(&p)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (p *ControlParameters) UnmarshalTLV(typ uint32, value []byte) error {
	return ControlParametersType.UnmarshalTLV(p, typ, value)
}

// Flag reads a flag bit by name, such as "Capture".
func (p ControlParameters) Flag(name string) bool {
	return ControlParametersType.Flag(&p, FlagPrefix+name)
}

// SetFlag writes a flag bit by name, such as "Capture".
// If Flags is absent, it is initialized to zero first.
// This does not change Mask.
func (p *ControlParameters) SetFlag(name string, v bool) {
	ControlParametersType.SetFlag(p, FlagPrefix+name, v)
}

func (p ControlParameters) String() string {
	return ControlParametersType.String(&p)
}
