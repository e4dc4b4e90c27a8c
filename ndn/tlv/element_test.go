package tlv_test

import (
	"testing"

	"github.com/usnistgov/ndntlv/ndn/ndntestvector"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

func TestElement(t *testing.T) {
	assert, _ := makeAR(t)

	for _, tt := range ndntestvector.TlvElementTests {
		input := bytesFromHex(tt.Input)
		var element tlv.Element
		e := tlv.Decode(input, &element)
		if tt.Bad {
			assert.Error(e, tt.Input)
			continue
		}
		if !assert.NoError(e, tt.Input) {
			continue
		}

		assert.Equal(len(input), element.Size(), tt.Input)
		assert.Equal(tt.Type, element.Type, tt.Input)
		value := bytesFromHex(tt.Value)
		assert.Equal(len(value), element.Length(), tt.Input)
		bytesEqual(assert, value, element.Value, tt.Input)

		var nni tlv.NNI
		if e := nni.UnmarshalBinary(value); e == nil {
			assert.EqualValues(tt.NNI, nni, tt.Input)
			nniV, _ := nni.MarshalBinary()
			assert.Equal(value, nniV, tt.Input)
		} else {
			assert.ErrorIs(e, tlv.ErrNNILength, tt.Input)
			assert.Equal(ndntestvector.NotNNI, tt.NNI, tt.Input)
		}

		first, rest, e := tlv.DecodeFirst(append(input, 0xF0))
		assert.NoError(e, tt.Input)
		assert.Equal(element.Type, first.Type, tt.Input)
		assert.Equal([]byte{0xF0}, rest, tt.Input)

		wire, e := tlv.EncodeFrom(element)
		assert.NoError(e, tt.Input)
		assert.Len(wire, element.Size(), tt.Input)

		clone := element.Clone()
		assert.Equal(element.Type, clone.Type)
		bytesEqual(assert, element.Value, clone.Value)
	}
}

func TestElementString(t *testing.T) {
	assert, _ := makeAR(t)

	element := tlv.MakeElement(0xC9, []byte{0xA0, 0xA1})
	assert.Equal("0xC9(2)", element.String())
}
