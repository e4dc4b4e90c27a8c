// Package ndntestvector contains test vectors shared among packages.
package ndntestvector

import (
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

// NotNNI in TlvElementTests indicates the TLV-VALUE is not a NonNegativeInteger.
const NotNNI uint64 = 0xB9C0CEA091E491F0

// TlvElementTests contains test vectors for TLV element decoder.
var TlvElementTests = []struct {
	Input string
	Bad   bool
	Type  uint32
	Value string
	NNI   uint64
}{
	{Input: "", Bad: true},                               // empty
	{Input: "01", Bad: true},                             // missing TLV-LENGTH
	{Input: "01 01", Bad: true},                          // incomplete TLV-VALUE
	{Input: "01 FD00", Bad: true},                        // incomplete TLV-LENGTH
	{Input: "01 FF0000000100000000 A0", Bad: true},       // TLV-LENGTH in 9 octets
	{Input: "01 04 A0A1", Bad: true},                     // incomplete TLV-VALUE
	{Input: "00 00", Bad: true},                          // zero TLV-TYPE
	{Input: "FF0000000100000000 00", Bad: true},          // TLV-TYPE in 9 octets
	{Input: "01 00", Type: 0x01, Value: "", NNI: NotNNI}, // zero TLV-LENGTH
	{Input: "FC 01 01", Type: 0xFC, Value: "01", NNI: 0x01},
	{Input: "FD00FD 02 A0A1", Type: 0xFD, Value: "A0A1", NNI: 0xA0A1},
	{Input: "FD00FF 03 A0A1A2", Type: 0xFF, Value: "A0A1A2", NNI: NotNNI},
	{Input: "FE00010000 04 A0A1A2A3", Type: 0x10000, Value: "A0A1A2A3", NNI: 0xA0A1A2A3},
	{Input: "FEFFFFFFFF 05 A0A1A2A3A4", Type: 0xFFFFFFFF, Value: "A0A1A2A3A4", NNI: NotNNI},
	{Input: "01 06 A0A1A2A3A4A5", Type: 0x01, Value: "A0A1A2A3A4A5", NNI: NotNNI},
	{Input: "01 07 A0A1A2A3A4A5A6", Type: 0x01, Value: "A0A1A2A3A4A5A6", NNI: NotNNI},
	{Input: "01 08 A0A1A2A3A4A5A6A7", Type: 0x01, Value: "A0A1A2A3A4A5A6A7", NNI: 0xA0A1A2A3A4A5A6A7},
	{Input: "01 09 A0A1A2A3A4A5A6A7A8", Type: 0x01, Value: "A0A1A2A3A4A5A6A7A8", NNI: NotNNI},
}

// VarNumTests contains test vectors for VAR-NUMBER encoding.
// Wire is the minimal encoding of N.
var VarNumTests = []struct {
	N    uint64
	Wire string
}{
	{0, "00"},
	{1, "01"},
	{252, "FC"},
	{253, "FD00FD"},
	{0x1234, "FD1234"},
	{65535, "FDFFFF"},
	{65536, "FE00010000"},
	{0x12345678, "FE12345678"},
	{0xFFFFFFFF, "FEFFFFFFFF"},
}

// VarNumDecodeTests contains test vectors for VAR-NUMBER decoder, including non-minimal and unsupported encodings.
// Err is the expected error, or nil if decoding should succeed.
var VarNumDecodeTests = []struct {
	Wire string
	Err  error
	N    uint64
}{
	{Wire: "", Err: tlv.ErrIncomplete},
	{Wire: "FD", Err: tlv.ErrIncomplete},
	{Wire: "FD01", Err: tlv.ErrIncomplete},
	{Wire: "FE000000", Err: tlv.ErrIncomplete},
	{Wire: "FF0000000000000001", Err: tlv.ErrVarNumWidth},
	{Wire: "FD0001", N: 1},
	{Wire: "FE000000FC", N: 0xFC},
	{Wire: "FE0000FFFF", N: 0xFFFF},
}

// EncoderNested is an element with two nested levels, built by Encoder.BeginValue and Encoder.EndValue.
// Outer 0x10000 contains 0x100 with B0B1, followed by 0x01 with A0A1.
const EncoderNested = "FE00010000 0A FD0100 02 B0B1 01 02 A0A1"
