package nfdmgmt

import (
	"time"

	"github.com/usnistgov/ndntlv/core/nnduration"
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/an"
)

// Prefix registration defaults.
const (
	DefaultRegisterOrigin  = an.RouteOriginClient
	DefaultRefreshInterval = 300 * time.Second
	MinExpirationPeriod    = 60 * time.Second
)

// RegisterOptions contains options of prefix registration.
// The zero value selects defaults.
type RegisterOptions struct {
	// FaceID is the nexthop face; zero means the face that receives the command.
	FaceID uint64 `json:"faceId,omitempty"`
	// Origin is the route origin; nil means client origin.
	Origin *an.RouteOrigin `json:"origin,omitempty"`
	// Cost is the route cost.
	Cost uint64 `json:"cost,omitempty"`
	// NoCapture clears the Capture flag, which is set by default.
	NoCapture bool `json:"noCapture,omitempty"`
	// ChildInherit sets the ChildInherit flag, which is cleared by default.
	ChildInherit bool `json:"childInherit,omitempty"`
	// RefreshInterval is how often the application re-registers; zero means DefaultRefreshInterval.
	RefreshInterval nnduration.Milliseconds `json:"refreshInterval,omitempty"`
}

func (opts RegisterOptions) origin() uint64 {
	if opts.Origin == nil {
		return uint64(DefaultRegisterOrigin)
	}
	return uint64(*opts.Origin)
}

// ExpirationPeriod returns route expiration period, four times the refresh interval but at least
// MinExpirationPeriod.
func (opts RegisterOptions) ExpirationPeriod() time.Duration {
	refresh := opts.RefreshInterval.DurationOr(nnduration.Milliseconds(DefaultRefreshInterval / time.Millisecond))
	return max(4*refresh, MinExpirationPeriod)
}

// RibRegisterParams constructs ControlParameters of rib/register command.
func RibRegisterParams(name ndn.Name, opts RegisterOptions) (p ControlParameters) {
	p.Name.Set(name)
	if opts.FaceID != 0 {
		p.FaceID.Set(opts.FaceID)
	}
	p.Origin.Set(opts.origin())
	p.Cost.Set(opts.Cost)
	p.SetFlag("ChildInherit", opts.ChildInherit)
	p.SetFlag("Capture", !opts.NoCapture)
	p.ExpirationPeriod.Set(uint64(opts.ExpirationPeriod().Milliseconds()))
	return p
}

// RibUnregisterParams constructs ControlParameters of rib/unregister command.
func RibUnregisterParams(name ndn.Name, opts RegisterOptions) (p ControlParameters) {
	p.Name.Set(name)
	if opts.FaceID != 0 {
		p.FaceID.Set(opts.FaceID)
	}
	p.Origin.Set(opts.origin())
	return p
}
