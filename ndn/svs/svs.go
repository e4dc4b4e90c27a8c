// Package svs implements State Vector Sync TLV records.
package svs

import (
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

// Field orders of MappingEntry.
// Extension fields should use orders above OrderMappingEntryName.
const (
	OrderMappingEntrySeqNo = 1
	OrderMappingEntryName  = 2
)

// MappingEntry is an entry in SVS-PS MappingData.
// Application-defined fields are kept in the embedded Extensions.
type MappingEntry struct {
	SeqNo uint64
	Name  ndn.Name
	tlv.Extensions
}

// NewMappingEntryType creates a StructType of MappingEntry that recognizes extension fields in reg.
// reg may be nil; unrecognized elements are still retained.
func NewMappingEntryType(reg *tlv.ExtensionRegistry) *tlv.StructType[MappingEntry] {
	b := tlv.NewStructBuilder[MappingEntry]("MappingEntry", an.TtMappingEntry)
	tlv.StructAdd(b, an.TtSeqNo, "seqNo", tlv.StructFieldNNI,
		func(me *MappingEntry) *uint64 { return &me.SeqNo },
		tlv.StructOrder(OrderMappingEntrySeqNo), tlv.StructRequired())
	tlv.StructAdd(b, an.TtName, "name", ndn.StructFieldName,
		func(me *MappingEntry) *ndn.Name { return &me.Name },
		tlv.StructOrder(OrderMappingEntryName), tlv.StructRequired())
	b.WithExtensions(func(me *MappingEntry) *tlv.Extensions { return &me.Extensions }, reg)
	return b.Build()
}

// MappingEntryType is the MappingEntry StructType without extension fields.
var MappingEntryType = NewMappingEntryType(nil)

var (
	_ tlv.Fielder     = MappingEntry{}
	_ tlv.Unmarshaler = (*MappingEntry)(nil)
)

// Field implements tlv.Fielder interface.
func (me MappingEntry) Field() tlv.Field {
	return MappingEntryType.Encode(&me)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (me *MappingEntry) UnmarshalTLV(typ uint32, value []byte) error {
	return MappingEntryType.UnmarshalTLV(me, typ, value)
}

func (me MappingEntry) String() string {
	return MappingEntryType.String(&me)
}

// MappingData is a list of MappingEntry for a publisher node.
type MappingData struct {
	Name    ndn.Name
	Entries []MappingEntry
}

// NewMappingDataType creates a StructType of MappingData whose entries are described by entryType.
func NewMappingDataType(entryType *tlv.StructType[MappingEntry]) *tlv.StructType[MappingData] {
	b := tlv.NewStructBuilder[MappingData]("MappingData", an.TtMappingData)
	tlv.StructAdd(b, an.TtName, "name", ndn.StructFieldName,
		func(md *MappingData) *ndn.Name { return &md.Name }, tlv.StructRequired())
	tlv.StructAddRepeated(b, an.TtMappingEntry, "entries", tlv.StructFieldNested(entryType),
		func(md *MappingData) *[]MappingEntry { return &md.Entries })
	return b.Build()
}

// MappingDataType is the MappingData StructType using MappingEntryType.
var MappingDataType = NewMappingDataType(MappingEntryType)

var (
	_ tlv.Fielder     = MappingData{}
	_ tlv.Unmarshaler = (*MappingData)(nil)
)

// Field implements tlv.Fielder interface.
func (md MappingData) Field() tlv.Field {
	return MappingDataType.Encode(&md)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (md *MappingData) UnmarshalTLV(typ uint32, value []byte) error {
	return MappingDataType.UnmarshalTLV(md, typ, value)
}

func (md MappingData) String() string {
	return MappingDataType.String(&md)
}
