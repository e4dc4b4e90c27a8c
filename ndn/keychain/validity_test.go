package keychain_test

import (
	"testing"
	"time"

	"github.com/usnistgov/ndntlv/core/testenv"
	"github.com/usnistgov/ndntlv/ndn/keychain"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)

func TestValidityPeriodEncode(t *testing.T) {
	assert, require := makeAR(t)

	vp := keychain.ValidityPeriod{
		NotBefore: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	assert.True(vp.Valid())

	wire, e := tlv.EncodeFrom(vp)
	require.NoError(e)
	assert.Equal(bytesFromHex("FD00FD26 FD00FE0F323032303031303154303030303030 FD00FF0F323033303132333154323335393539"), wire)

	var decoded keychain.ValidityPeriod
	require.NoError(tlv.Decode(wire, &decoded))
	assert.True(vp.NotBefore.Equal(decoded.NotBefore))
	assert.True(vp.NotAfter.Equal(decoded.NotAfter))
	assert.Equal("ValidityPeriod(notBefore=20200101T000000, notAfter=20301231T235959)", decoded.String())

	value, e := tlv.EncodeValueOnly(vp)
	require.NoError(e)
	var fromValue keychain.ValidityPeriod
	require.NoError(fromValue.UnmarshalBinary(value))
	assert.True(vp.NotAfter.Equal(fromValue.NotAfter))
}

func TestValidityPeriodIncludes(t *testing.T) {
	assert, _ := makeAR(t)

	vp := keychain.ValidityPeriod{
		NotBefore: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	assert.True(vp.Includes(vp.NotBefore))
	assert.True(vp.Includes(vp.NotAfter.Add(500 * time.Millisecond)))
	assert.False(vp.Includes(vp.NotBefore.Add(-time.Second)))
	assert.False(vp.Includes(vp.NotAfter.Add(time.Second)))

	assert.True(keychain.MaxValidityPeriod.Valid())
	assert.True(keychain.MaxValidityPeriod.Includes(time.Now()))

	vp = keychain.NewValidityPeriod(time.Hour)
	assert.True(vp.Valid())
	assert.True(vp.Includes(time.Now()))
	assert.False(vp.Includes(time.Now().Add(2 * time.Hour)))
}

func TestValidityPeriodInvalid(t *testing.T) {
	assert, _ := makeAR(t)

	_, e := tlv.EncodeFrom(keychain.ValidityPeriod{})
	assert.ErrorIs(e, keychain.ErrValidityPeriod)

	reversed := keychain.ValidityPeriod{
		NotBefore: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.False(reversed.Valid())
	_, e = tlv.EncodeFrom(reversed)
	assert.ErrorIs(e, keychain.ErrValidityPeriod)

	var vp keychain.ValidityPeriod
	// NotAfter before NotBefore
	e = tlv.Decode(bytesFromHex("FD00FD26 FD00FE0F323033303132333154323335393539 FD00FF0F323032303031303154303030303030"), &vp)
	assert.ErrorIs(e, keychain.ErrValidityPeriod)

	// malformed timestamp
	e = tlv.Decode(bytesFromHex("FD00FD18 FD00FE0141 FD00FF0F323033303132333154323335393539"), &vp)
	assert.ErrorIs(e, keychain.ErrValidityPeriod)

	// missing NotAfter
	e = tlv.Decode(bytesFromHex("FD00FD13 FD00FE0F323032303031303154303030303030"), &vp)
	assert.ErrorIs(e, tlv.ErrRequired)

	// TLV-TYPE written as a single octet is a VarNum marker
	e = tlv.Decode(bytesFromHex("FD22 FE0F323032303031303154303030303030 FF0F323033303132333154323335393539"), &vp)
	assert.Error(e)

	// unrecognized critical element
	e = tlv.Decode(bytesFromHex("FD00FD2A FD00FE0F323032303031303154303030303030 FD00FF0F323033303132333154323335393539 0202A0A1"), &vp)
	assert.ErrorIs(e, tlv.ErrCritical)
}
