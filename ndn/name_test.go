package ndn_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/tlv"
)

func TestNameDecode(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		input  string
		bad    bool
		nComps int
		str    string
	}{
		{input: "", bad: true},
		{input: "0700", nComps: 0, str: "/"},
		{input: "0714 080141 080142 080100 0801FF 800141 0800 08012E", nComps: 7, str: "/A/B/%00/%FF/128=A/.../...."},
		{input: "0722 0120(DC6D6840C6FAFB773D583CDBF465661C7B4B968E04ACD4D9015B1C4E53E59D6A)", nComps: 1,
			str: "/sha256digest=dc6d6840c6fafb773d583cdbf465661c7b4b968e04acd4d9015b1c4e53e59d6a"},
		{input: "0763 " + strings.Repeat("080141 ", 32) + "080142", nComps: 33, str: strings.Repeat("/A", 32) + "/B"},
		{input: "0200", bad: true},           // bad TLV-TYPE
		{input: "0704 0102 DDDD", bad: true}, // wrong digest length
		{input: "0703 0801", bad: true},      // truncated component
	}
	for _, tt := range tests {
		var name ndn.Name
		e := tlv.Decode(bytesFromHex(tt.input), &name)
		if tt.bad {
			assert.Error(e, tt.input)
			continue
		}
		if !assert.NoError(e, tt.input) {
			continue
		}

		assert.Len(name, tt.nComps, tt.input)
		assert.Equal(tt.str, name.String(), tt.input)
		assert.True(ndn.ParseName(tt.str).Equal(name), tt.input)

		wire, e := tlv.EncodeFrom(name)
		assert.NoError(e, tt.input)
		assert.Equal(bytesFromHex(tt.input), wire, tt.input)
	}
}

func TestNameEncode(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		input    string
		outputTL string
		outputV  string
	}{
		{"ndn:/", "0700", ""},
		{"/", "0700", ""},
		{"/G", "0703", "080147"},
		{"/H/I", "0706", "080148 080149"},
		{"/.../..../.....", "0709", "0800 08012E 08022E2E"},
		{"/%00GH%ab%cD%EF", "0708", "0806004748ABCDEF"},
		{"/8=A/33=B", "0706", "080141 210142"},
	}
	for _, tt := range tests {
		name := ndn.ParseName(tt.input)

		wire, e := tlv.EncodeFrom(name)
		if assert.NoError(e, tt.input) {
			assert.Equal(bytesFromHex(tt.outputTL+tt.outputV), wire, tt.input)
		}

		value, e := name.MarshalBinary()
		if assert.NoError(e, tt.input) {
			bytesEqual(assert, bytesFromHex(tt.outputV), value, tt.input)
		}

		var decoded ndn.Name
		assert.NoError(decoded.UnmarshalBinary(value), tt.input)
		assert.True(name.Equal(decoded), tt.input)
	}
}

func TestNameCompare(t *testing.T) {
	assert, require := makeAR(t)

	nameStrs := []string{
		"0700",
		"0702 0300",
		"0702 0800",
		"0704 0800 0800",
		"0703 080141",
		"0705 080141 0800",
		"0707 080141 0800 0800",
		"0706 080141 080141",
		"0703 080142",
		"0704 08024100",
		"0704 08024101",
		"0702 0900",
	}
	names := make([]ndn.Name, len(nameStrs))
	for i, nameStr := range nameStrs {
		require.NoError(tlv.Decode(bytesFromHex(nameStr), &names[i]), nameStr)
	}

	// -2 means less and not prefix; -1 means prefix; 0 means equal; +1 means greater with other as prefix; +2 means greater.
	relTable := [][]int{
		{+0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
		{+1, +0, -2, -2, -2, -2, -2, -2, -2, -2, -2, -2},
		{+1, +2, +0, -1, -2, -2, -2, -2, -2, -2, -2, -2},
		{+1, +2, +1, +0, -2, -2, -2, -2, -2, -2, -2, -2},
		{+1, +2, +2, +2, +0, -1, -1, -1, -2, -2, -2, -2},
		{+1, +2, +2, +2, +1, +0, -1, -2, -2, -2, -2, -2},
		{+1, +2, +2, +2, +1, +1, +0, -2, -2, -2, -2, -2},
		{+1, +2, +2, +2, +1, +2, +2, +0, -2, -2, -2, -2},
		{+1, +2, +2, +2, +2, +2, +2, +2, +0, -2, -2, -2},
		{+1, +2, +2, +2, +2, +2, +2, +2, +2, +0, -2, -2},
		{+1, +2, +2, +2, +2, +2, +2, +2, +2, +2, +0, -2},
		{+1, +2, +2, +2, +2, +2, +2, +2, +2, +2, +2, +0},
	}
	for i, relRow := range relTable {
		for j, rel := range relRow {
			cmp := names[i].Compare(names[j])
			switch rel {
			case -2, -1:
				assert.Negative(cmp, "%d=%s %d=%s", i, names[i], j, names[j])
			case 0:
				assert.Zero(cmp, "%d=%s %d=%s", i, names[i], j, names[j])
				assert.True(names[i].Equal(names[j]))
			case +1, +2:
				assert.Positive(cmp, "%d=%s %d=%s", i, names[i], j, names[j])
			}
			assert.Equal(rel == -1 || rel == 0, names[i].IsPrefixOf(names[j]), "%d=%s %d=%s", i, names[i], j, names[j])
		}
	}
}

func TestNameSlice(t *testing.T) {
	assert, _ := makeAR(t)

	name := ndn.ParseName("/A/B/C")
	assert.Equal("B", name.Get(1).String())
	assert.Equal("C", name.Get(-1).String())
	assert.False(name.Get(3).Valid())
	assert.Equal("/A/B", name.GetPrefix(-1).String())
	assert.Equal("/", name.GetPrefix(-4).String())
	assert.Equal("/A/B/C", name.GetPrefix(5).String())

	appended := name.GetPrefix(1).Append(ndn.ParseNameComponent("D"))
	assert.Equal("/A/D", appended.String())
	assert.Equal("/A/B/C", name.String())
	assert.Equal(6, appended.Length())
}

func TestNameJSON(t *testing.T) {
	assert, _ := makeAR(t)

	var record struct {
		Name ndn.Name `json:"name"`
	}
	assert.NoError(json.Unmarshal([]byte(`{"name":"/A/B"}`), &record))
	assert.Equal("/A/B", record.Name.String())

	j, e := json.Marshal(record)
	assert.NoError(e)
	assert.Equal(`{"name":"/A/B"}`, string(j))
}
