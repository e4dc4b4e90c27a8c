package ndn_test

import (
	"testing"

	"github.com/usnistgov/ndntlv/core/optional"
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

type nameRecord struct {
	Name     ndn.Name
	Strategy optional.Optional[ndn.Name]
}

var nameRecordType = func() *tlv.StructType[nameRecord] {
	b := tlv.NewStructBuilder[nameRecord]("NameRecord", 0xC0)
	tlv.StructAdd(b, an.TtName, "name", ndn.StructFieldName, func(r *nameRecord) *ndn.Name { return &r.Name }, tlv.StructRequired())
	tlv.StructAddOptional(b, an.TtStrategy, "strategy", ndn.StructFieldNameNested, func(r *nameRecord) *optional.Optional[ndn.Name] { return &r.Strategy })
	return b.Build()
}()

func TestStructFieldName(t *testing.T) {
	assert, require := makeAR(t)

	r := nameRecord{Name: ndn.ParseName("/A")}
	r.Strategy.Set(ndn.ParseName("/S"))

	wire, e := tlv.EncodeFrom(nameRecordType.Encode(&r))
	require.NoError(e)
	assert.Equal(bytesFromHex("C00C 0703080141 6B05 0703080153"), wire)
	assert.Equal("NameRecord(name=/A, strategy=/S)", nameRecordType.String(&r))

	var decoded nameRecord
	require.NoError(nameRecordType.Decode(&decoded, wire))
	assert.True(decoded.Name.Equal(r.Name))
	assert.True(decoded.Strategy.Unwrap().Equal(ndn.ParseName("/S")))

	assert.ErrorIs(nameRecordType.Decode(&decoded, bytesFromHex("C007 0700 6B03 080153")), tlv.ErrTypeMismatch)
	assert.ErrorIs(nameRecordType.Decode(&decoded, bytesFromHex("C004 0702 0000")), tlv.ErrType)
}
