package nfdmgmt_test

import (
	"testing"

	"github.com/usnistgov/ndntlv/core/jsonhelper"
	"github.com/usnistgov/ndntlv/core/testenv"
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/mgmt/nfdmgmt"
	"github.com/usnistgov/ndntlv/ndn/tlv"
	"go.uber.org/multierr"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)

func TestRibRegister(t *testing.T) {
	assert, require := makeAR(t)

	p := nfdmgmt.RibRegisterParams(ndn.ParseName("/A"), nfdmgmt.RegisterOptions{})
	assert.True(p.Flag("Capture"))
	assert.False(p.Flag("ChildInherit"))
	assert.EqualValues(1200000, p.ExpirationPeriod.Unwrap())

	wire, e := tlv.EncodeFrom(p)
	require.NoError(e)
	assert.Equal(bytesFromHex("6814 0703080141 6F0141 6A0100 6C0102 6D0400124F80"), wire)
	assert.Equal("ControlParameters(name=/A, origin=65, cost=0, flags=0x2(Capture|EnableServe|LpReliabilityEnabled), expirationPeriod=1200000)", p.String())
	assert.NoError(nfdmgmt.ValidateCommand("rib/register", p))

	var decoded nfdmgmt.ControlParameters
	require.NoError(tlv.Decode(wire, &decoded))
	assert.True(decoded.Name.Unwrap().Equal(ndn.ParseName("/A")))
	assert.EqualValues(an.RouteOriginClient, decoded.Origin.Unwrap())
	assert.True(decoded.Flag("Capture"))
	assert.False(decoded.FaceID.IsSet())

	origin := an.RouteOriginStatic
	p = nfdmgmt.RibRegisterParams(ndn.ParseName("/B"), nfdmgmt.RegisterOptions{
		FaceID:          300,
		Origin:          &origin,
		Cost:            10,
		NoCapture:       true,
		ChildInherit:    true,
		RefreshInterval: 10000,
	})
	assert.EqualValues(300, p.FaceID.Unwrap())
	assert.EqualValues(255, p.Origin.Unwrap())
	assert.EqualValues(an.RouteFlagChildInherit, p.Flags.Unwrap())
	assert.EqualValues(60000, p.ExpirationPeriod.Unwrap())

	p = nfdmgmt.RibUnregisterParams(ndn.ParseName("/B"), nfdmgmt.RegisterOptions{})
	assert.Equal([]string{"name", "origin"}, nfdmgmt.ControlParametersType.PresentKeys(&p))
	assert.NoError(nfdmgmt.ValidateCommand("rib/unregister", p))
}

func TestControlParametersDecode(t *testing.T) {
	assert, require := makeAR(t)

	var p nfdmgmt.ControlParameters
	require.NoError(tlv.Decode(bytesFromHex("6818 0100 690101 7203756470 6B050703080153 850101 FD00FF00"), &p))
	assert.EqualValues(1, p.FaceID.Unwrap())
	assert.Equal("udp", p.URI.Unwrap())
	assert.Equal(an.PersistencyOnDemand, p.FacePersistency.Unwrap())
	assert.True(p.Strategy.Unwrap().Equal(ndn.ParseName("/S")))

	assert.ErrorIs(tlv.Decode(bytesFromHex("6803 850105"), &p), tlv.ErrEnum)
	assert.ErrorIs(tlv.Decode(bytesFromHex("6806 690101 690102"), &p), tlv.ErrOrder)
	assert.ErrorIs(tlv.Decode(bytesFromHex("6500"), &p), tlv.ErrTypeMismatch)
}

func TestValidateCommand(t *testing.T) {
	assert, _ := makeAR(t)

	var p nfdmgmt.ControlParameters
	e := nfdmgmt.ValidateCommand("faces/create", p)
	assert.ErrorIs(e, nfdmgmt.ErrMissingParam)
	assert.Len(multierr.Errors(e), 1)

	p.URI.Set("udp4://192.0.2.1:6363")
	p.FacePersistency.Set(an.PersistencyPermanent)
	p.SetFlag("LocalFieldsEnabled", true)
	p.Mask.Set(an.FaceFlagLocalFieldsEnabled)
	assert.NoError(nfdmgmt.ValidateCommand("faces/create", p))

	p.Flags.Set(0x08)
	assert.ErrorIs(nfdmgmt.ValidateCommand("faces/create", p), nfdmgmt.ErrFlagBits)

	p = nfdmgmt.ControlParameters{}
	p.Name.Set(ndn.ParseName("/A"))
	e = nfdmgmt.ValidateCommand("faces/destroy", p)
	assert.ErrorIs(e, nfdmgmt.ErrMissingParam)
	assert.ErrorIs(e, nfdmgmt.ErrUnexpectedParam)
	assert.Len(multierr.Errors(e), 2)

	e = nfdmgmt.ValidateCommand("strategy-choice/set", p)
	assert.ErrorIs(e, nfdmgmt.ErrMissingParam)
	p.Strategy.Set(ndn.ParseName("/localhost/nfd/strategy/best-route"))
	assert.NoError(nfdmgmt.ValidateCommand("strategy-choice/set", p))
	assert.ErrorIs(nfdmgmt.ValidateCommand("strategy-choice/unset", p), nfdmgmt.ErrUnexpectedParam)

	p = nfdmgmt.RibRegisterParams(ndn.ParseName("/A"), nfdmgmt.RegisterOptions{})
	p.SetFlag("CongestionMarkingEnabled", true)
	assert.ErrorIs(nfdmgmt.ValidateCommand("rib/register", p), nfdmgmt.ErrFlagBits)

	assert.ErrorIs(nfdmgmt.ValidateCommand("faces/list", p), nfdmgmt.ErrVerb)
	assert.Len(nfdmgmt.Commands, 7)
}

func TestCommandName(t *testing.T) {
	assert, require := makeAR(t)

	p := nfdmgmt.RibRegisterParams(ndn.ParseName("/A"), nfdmgmt.RegisterOptions{})
	name, e := nfdmgmt.MakeCommandName(nfdmgmt.PrefixLocalhost, "rib/register", p)
	require.NoError(e)
	require.Len(name, 5)
	assert.Equal("/localhost/nfd/rib/register", name.GetPrefix(4).String())
	assert.EqualValues(an.TtGenericNameComponent, name[4].Type)

	wire, _ := tlv.EncodeFrom(p)
	assert.Equal(wire, name[4].Value)

	verb, decoded, e := nfdmgmt.SplitCommandName(nfdmgmt.PrefixLocalhost, name)
	require.NoError(e)
	assert.Equal("rib/register", verb)
	assert.True(decoded.Name.Unwrap().Equal(ndn.ParseName("/A")))

	_, _, e = nfdmgmt.SplitCommandName(nfdmgmt.PrefixLocalhop, name)
	assert.ErrorIs(e, nfdmgmt.ErrVerb)

	_, e = nfdmgmt.MakeCommandName(nfdmgmt.PrefixLocalhost, "rib/unregister", p)
	assert.ErrorIs(e, nfdmgmt.ErrUnexpectedParam)
}

func TestControlResponse(t *testing.T) {
	assert, require := makeAR(t)

	var cr nfdmgmt.ControlResponse
	require.NoError(tlv.Decode(bytesFromHex("650E 6601C8 67024F4B 68050703080141"), &cr))
	assert.EqualValues(200, cr.StatusCode)
	assert.Equal("OK", cr.StatusText)
	assert.True(cr.OK())
	assert.NoError(cr.Err())
	assert.Equal(bytesFromHex("68050703080141"), cr.Body)

	p, e := cr.Parameters()
	require.NoError(e)
	assert.True(p.Name.Unwrap().Equal(ndn.ParseName("/A")))

	wire, e := tlv.EncodeFrom(cr)
	require.NoError(e)
	assert.Equal(bytesFromHex("650E 6601C8 67024F4B 68050703080141"), wire)

	require.NoError(tlv.Decode(bytesFromHex("6509 660201F4 6703426164"), &cr))
	assert.False(cr.OK())
	assert.ErrorIs(cr.Err(), nfdmgmt.ErrStatus)
	assert.Len(cr.Body, 0)
	assert.Equal("ControlResponse(500 Bad, body=0)", cr.String())

	require.NoError(tlv.Decode(bytesFromHex("6509 6601C8 6800 67024F4B"), &cr))
	assert.Len(cr.Body, 0)

	assert.ErrorIs(tlv.Decode(bytesFromHex("6508 660203E8 67024F4B"), &cr), tlv.ErrRange)
	assert.ErrorIs(tlv.Decode(bytesFromHex("6503 6601C8"), &cr), tlv.ErrRequired)
}

func TestControlParametersJSON(t *testing.T) {
	assert, require := makeAR(t)

	var p nfdmgmt.ControlParameters
	require.NoError(jsonhelper.Roundtrip(map[string]any{
		"uri":             "udp4://192.0.2.1:6363",
		"facePersistency": 2,
		"mtu":             1500,
	}, &p, jsonhelper.DisallowUnknownFields))
	assert.Equal("udp4://192.0.2.1:6363", p.URI.Unwrap())
	assert.Equal(an.PersistencyPermanent, p.FacePersistency.Unwrap())
	assert.EqualValues(1500, p.Mtu.Unwrap())
	assert.False(p.Name.IsSet())

	var m map[string]any
	require.NoError(jsonhelper.Roundtrip(p, &m))
	assert.Equal(map[string]any{
		"uri":             "udp4://192.0.2.1:6363",
		"facePersistency": float64(2),
		"mtu":             float64(1500),
	}, jsonhelper.CleanStruct(m))
}

func TestRegisterOptionsJSON(t *testing.T) {
	assert, _ := makeAR(t)

	var opts nfdmgmt.RegisterOptions
	testenv.FromJSON(`{"refreshInterval":"20s","noCapture":true,"origin":255}`, &opts)
	assert.EqualValues(20000, opts.RefreshInterval)
	assert.EqualValues(80000, opts.ExpirationPeriod().Milliseconds())

	p := nfdmgmt.RibRegisterParams(ndn.ParseName("/A"), opts)
	assert.False(p.Flag("Capture"))
	assert.EqualValues(255, p.Origin.Unwrap())
}
