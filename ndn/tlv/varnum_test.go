package tlv_test

import (
	"testing"

	"github.com/usnistgov/ndntlv/ndn/ndntestvector"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

func TestVarNum(t *testing.T) {
	assert, _ := makeAR(t)

	for _, tt := range ndntestvector.VarNumTests {
		n := tlv.VarNum(tt.N)
		wire := bytesFromHex(tt.Wire)
		assert.True(n.Valid(), tt.Wire)
		assert.Equal(len(wire), n.Size(), tt.Wire)

		encoded, e := n.Encode(nil)
		assert.NoError(e, tt.Wire)
		assert.Equal(wire, encoded, tt.Wire)

		room := make([]byte, n.Size())
		n.Prepend(room)
		assert.Equal(wire, room, tt.Wire)

		var decoded tlv.VarNum
		rest, e := decoded.Decode(append(wire, 0xA0))
		assert.NoError(e, tt.Wire)
		assert.Equal(n, decoded, tt.Wire)
		assert.Equal([]byte{0xA0}, rest, tt.Wire)
	}

	n := tlv.VarNum(0x100000000)
	assert.False(n.Valid())
	assert.Equal(0, n.Size())
	_, e := n.Encode(nil)
	assert.ErrorIs(e, tlv.ErrRange)
	assert.PanicsWithValue(tlv.ErrRange, func() { n.Prepend(make([]byte, 9)) })
}

func TestVarNumDecode(t *testing.T) {
	assert, _ := makeAR(t)

	for _, tt := range ndntestvector.VarNumDecodeTests {
		var n tlv.VarNum
		rest, e := n.Decode(bytesFromHex(tt.Wire))
		if tt.Err != nil {
			assert.ErrorIs(e, tt.Err, tt.Wire)
		} else if assert.NoError(e, tt.Wire) {
			assert.EqualValues(tt.N, n, tt.Wire)
			assert.Len(rest, 0, tt.Wire)
		}
	}
}
