package an

import "strconv"

// NFD management TLV-TYPE assigned numbers.
const (
	TtControlParameters             = 0x68
	TtFaceID                        = 0x69
	TtURI                           = 0x72
	TtLocalURI                      = 0x81
	TtOrigin                        = 0x6F
	TtCost                          = 0x6A
	TtCapacity                      = 0x83
	TtCount                         = 0x84
	TtBaseCongestionMarkingInterval = 0x87
	TtDefaultCongestionThreshold    = 0x88
	TtMtu                           = 0x89
	TtFlags                         = 0x6C
	TtMask                          = 0x70
	TtStrategy                      = 0x6B
	TtExpirationPeriod              = 0x6D
	TtFacePersistency               = 0x85

	TtControlResponse = 0x65
	TtStatusCode      = 0x66
	TtStatusText      = 0x67
)

// FacePersistency indicates face persistency.
type FacePersistency uint8

// FacePersistency values.
const (
	PersistencyPersistent FacePersistency = 0
	PersistencyOnDemand   FacePersistency = 1
	PersistencyPermanent  FacePersistency = 2
)

func (p FacePersistency) String() string {
	switch p {
	case PersistencyPersistent:
		return "persistent"
	case PersistencyOnDemand:
		return "on-demand"
	case PersistencyPermanent:
		return "permanent"
	}
	return strconv.Itoa(int(p))
}

// RouteOrigin indicates route origin.
type RouteOrigin uint8

// RouteOrigin values.
const (
	RouteOriginApp       RouteOrigin = 0
	RouteOriginAutoReg   RouteOrigin = 64
	RouteOriginClient    RouteOrigin = 65
	RouteOriginAutoconf  RouteOrigin = 66
	RouteOriginNLSR      RouteOrigin = 128
	RouteOriginPrefixAnn RouteOrigin = 129
	RouteOriginStatic    RouteOrigin = 255
)

func (o RouteOrigin) String() string {
	switch o {
	case RouteOriginApp:
		return "app"
	case RouteOriginAutoReg:
		return "autoreg"
	case RouteOriginClient:
		return "client"
	case RouteOriginAutoconf:
		return "autoconf"
	case RouteOriginNLSR:
		return "nlsr"
	case RouteOriginPrefixAnn:
		return "prefixann"
	case RouteOriginStatic:
		return "static"
	}
	return strconv.Itoa(int(o))
}

// Face flag bits.
const (
	FaceFlagLocalFieldsEnabled       = 1 << 0
	FaceFlagLpReliabilityEnabled     = 1 << 1
	FaceFlagCongestionMarkingEnabled = 1 << 2
)

// CS flag bits.
const (
	CsFlagEnableAdmit = 1 << 0
	CsFlagEnableServe = 1 << 1
)

// Route flag bits.
const (
	RouteFlagChildInherit = 1 << 0
	RouteFlagCapture      = 1 << 1
)
