package tlv_test

import (
	"errors"
	"testing"

	"github.com/usnistgov/ndntlv/ndn/tlv"
)

type testEncodeMarshaler int

func (m testEncodeMarshaler) Field() tlv.Field {
	if m < 0 {
		return tlv.FieldError(errors.New("testEncodeMarshaler error"))
	}
	return tlv.TLVBytes(uint32(m), make([]byte, m))
}

func TestEncode(t *testing.T) {
	assert, _ := makeAR(t)

	wire, e := tlv.EncodeFrom(
		tlv.Bytes(nil),
		tlv.Bytes([]byte{0xF1}),
		tlv.FieldFunc(func(b []byte) ([]byte, error) { return append(b, 0xF2), nil }),
		tlv.TLVBytes(1, []byte{0xF3}),
		testEncodeMarshaler(2),
		tlv.TLV(3, testEncodeMarshaler(3).Field()),
		tlv.TLVFrom(4, testEncodeMarshaler(4)),
		tlv.Sequence(tlv.Bytes([]byte{0xF4}), tlv.Field{}, tlv.TLVNNI(5, 0xF5)),
		tlv.FieldEncoderFunc(func(enc *tlv.Encoder) { enc.PrependTLV(6) }),
	)
	assert.NoError(e)
	assert.Equal([]byte{
		0xF1,
		0xF2,
		0x01, 0x01, 0xF3,
		0x02, 0x02, 0x00, 0x00,
		0x03, 0x05, 0x03, 0x03, 0x00, 0x00, 0x00,
		0x04, 0x06, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00,
		0xF4, 0x05, 0x01, 0xF5,
		0x06, 0x00,
	}, wire)

	wire, e = tlv.EncodeValueOnly(tlv.TLVBytes(5, []byte{0xF4}))
	assert.NoError(e)
	assert.Equal([]byte{0xF4}, wire)

	wire, e = tlv.TLVNNI(7, 0x10000).Encode([]byte{0xF6})
	assert.NoError(e)
	assert.Equal(bytesFromHex("F6 0704 00010000"), wire)

	_, e = tlv.Encode(testEncodeMarshaler(-1).Field())
	assert.Error(e)
	_, e = tlv.Encode(tlv.TLVNNI(10, -1))
	assert.ErrorIs(e, tlv.ErrRange)
	_, e = tlv.EncodeValueOnly(tlv.TLVNNI(11, -1))
	assert.ErrorIs(e, tlv.ErrRange)
	_, e = tlv.EncodeValueOnly(tlv.Bytes([]byte{0xF7}))
	assert.ErrorIs(e, tlv.ErrErrorField)
	_, e = tlv.Encode(tlv.TLV(0))
	assert.ErrorIs(e, tlv.ErrType)
}

func TestNNI(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		n    uint64
		wire string
	}{
		{0x00, "00"},
		{0xFF, "FF"},
		{0x100, "0100"},
		{0xFFFF, "FFFF"},
		{0x10000, "00010000"},
		{0xFFFFFFFF, "FFFFFFFF"},
		{0x100000000, "0000000100000000"},
	}
	for _, tt := range tests {
		n := tlv.NNI(tt.n)
		wire := bytesFromHex(tt.wire)
		assert.Equal(len(wire), n.Size(), tt.wire)
		assert.Equal(wire, n.Encode(nil), tt.wire)

		encoded, e := tlv.EncodeFrom(n)
		assert.NoError(e, tt.wire)
		assert.Equal(wire, encoded, tt.wire)

		var decoded tlv.NNI
		assert.NoError(decoded.UnmarshalBinary(wire), tt.wire)
		assert.Equal(n, decoded, tt.wire)
	}
}
