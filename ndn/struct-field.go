package ndn

import (
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

type structFieldName struct{}

func (structFieldName) EncodeValue(v Name) tlv.Field {
	return tlv.Sequence(v.componentFields()...)
}

func (structFieldName) DecodeValue(de tlv.DecodingElement) (v Name, e error) {
	e = v.UnmarshalBinary(de.Value)
	return
}

func (structFieldName) String(v Name) string {
	return v.String()
}

// StructFieldName is a field of Name, where the record field TLV-TYPE is Name TLV-TYPE.
// Use with an.TtName as the field TLV-TYPE.
var StructFieldName tlv.StructFieldType[Name] = structFieldName{}

type structFieldNameNested struct{}

func (structFieldNameNested) EncodeValue(v Name) tlv.Field {
	return v.Field()
}

func (structFieldNameNested) DecodeValue(de tlv.DecodingElement) (v Name, e error) {
	e = tlv.Decode(de.Value, &v)
	return
}

func (structFieldNameNested) String(v Name) string {
	return v.String()
}

// StructFieldNameNested is a field that contains a Name element.
var StructFieldNameNested tlv.StructFieldType[Name] = structFieldNameNested{}
