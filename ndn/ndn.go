// Package ndn implements Named Data Networking (NDN) names.
//
// Names and name components are built on the TLV codec in package tlv.
// StructFieldName and StructFieldNameNested let a structured record carry a name.
package ndn
