package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/ndntlv/core/jsonhelper"
	"github.com/usnistgov/ndntlv/ndn/keychain"
	"github.com/usnistgov/ndntlv/ndn/mgmt/nfdmgmt"
	"github.com/usnistgov/ndntlv/ndn/svs"
	"github.com/usnistgov/ndntlv/ndn/tlv"
	"go.uber.org/zap"
)

// record is a decodable structure that can also print itself.
type record interface {
	tlv.Unmarshaler
	fmt.Stringer
}

var records = map[string]func() record{
	"controlparameters": func() record { return &nfdmgmt.ControlParameters{} },
	"controlresponse":   func() record { return &nfdmgmt.ControlResponse{} },
	"mappingentry":      func() record { return &svs.MappingEntry{} },
	"mappingdata":       func() record { return &svs.MappingData{} },
	"statevector":       func() record { return &svs.StateVector{} },
	"validity":          func() record { return &keychain.ValidityPeriod{} },
}

func recordNames() []string {
	return slices.Sorted(maps.Keys(records))
}

// isNested determines whether value consists entirely of TLV elements.
func isNested(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	d := tlv.DecodingBuffer(value)
	for !d.EOF() {
		if _, e := d.Element(); e != nil {
			return false
		}
	}
	return true
}

// printTree writes an indented element tree.
// An element whose TLV-VALUE parses as a sequence of elements is shown with its children;
// otherwise, TLV-VALUE is shown in hexadecimal.
func printTree(w io.Writer, wire []byte, depth int) error {
	d := tlv.DecodingBuffer(wire)
	for !d.EOF() {
		de, e := d.Element()
		if e != nil {
			return e
		}

		fmt.Fprint(w, strings.Repeat("  ", depth), de.Element)
		switch {
		case isNested(de.Value):
			fmt.Fprintln(w)
			if e := printTree(w, de.Value, depth+1); e != nil {
				return e
			}
		case len(de.Value) > 0:
			fmt.Fprintf(w, " %X\n", de.Value)
		default:
			fmt.Fprintln(w)
		}
	}
	return nil
}

// printRecord decodes wire as a record and writes its string or JSON form.
func printRecord(w io.Writer, recordName string, wire []byte, asJSON bool) error {
	makeRecord, ok := records[recordName]
	if !ok {
		return fmt.Errorf("unknown record %s, expecting one of %s", recordName, strings.Join(recordNames(), ","))
	}

	rec := makeRecord()
	if e := tlv.Decode(wire, rec); e != nil {
		return e
	}
	logger.Debug("record decoded", zap.String("record", recordName), zap.Int("size", len(wire)))

	if !asJSON {
		fmt.Fprintln(w, rec)
		return nil
	}

	var m any
	if e := jsonhelper.Roundtrip(rec, &m); e != nil {
		return e
	}
	j, e := json.MarshalIndent(jsonhelper.CleanStruct(m), "", "  ")
	if e != nil {
		return e
	}
	fmt.Fprintln(w, string(j))
	return nil
}

func init() {
	var recordName string
	var asJSON bool
	defineCommand(&cli.Command{
		Name:  "decode",
		Usage: "Print TLV elements as a tree, or decode a known record.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "record",
				Usage:       "Decode as `type`: " + strings.Join(recordNames(), ", ") + ".",
				Destination: &recordName,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print decoded record as JSON.",
				Destination: &asJSON,
			},
		}, inputFlags...),
		Action: func(c *cli.Context) error {
			wire, e := readInput(c)
			if e != nil {
				return e
			}
			if recordName != "" {
				return printRecord(c.App.Writer, recordName, wire, asJSON)
			}
			return printTree(c.App.Writer, wire, 0)
		},
	})
}
