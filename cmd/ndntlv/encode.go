package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/ndntlv/core/jsonhelper"
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/mgmt/nfdmgmt"
	"github.com/usnistgov/ndntlv/ndn/tlv"
	"go.uber.org/zap"
)

func init() {
	var verb, prefix string
	defineCommand(&cli.Command{
		Name:  "encode-cp",
		Usage: "Encode JSON ControlParameters as hexadecimal TLV.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "verb",
				Usage:       "Validate against control command `verb`, such as rib/register.",
				Destination: &verb,
			},
			&cli.StringFlag{
				Name:        "prefix",
				Usage:       "Print command name under `prefix` instead of ControlParameters (requires --verb).",
				Destination: &prefix,
			},
		},
		Action: func(c *cli.Context) error {
			var input map[string]any
			if e := json.NewDecoder(c.App.Reader).Decode(&input); e != nil {
				return e
			}

			var p nfdmgmt.ControlParameters
			if e := jsonhelper.Roundtrip(input, &p, jsonhelper.DisallowUnknownFields); e != nil {
				return e
			}
			logger.Debug("ControlParameters parsed", zap.Stringer("params", p))

			switch {
			case prefix != "":
				name, e := nfdmgmt.MakeCommandName(ndn.ParseName(prefix), verb, p)
				if e != nil {
					return e
				}
				fmt.Fprintln(c.App.Writer, name)
				return nil
			case verb != "":
				if e := nfdmgmt.ValidateCommand(verb, p); e != nil {
					return e
				}
			}

			wire, e := tlv.EncodeFrom(p)
			if e != nil {
				return e
			}
			fmt.Fprintf(c.App.Writer, "%X\n", wire)
			return nil
		},
	})

	defineCommand(&cli.Command{
		Name:      "varnum",
		Usage:     "Print VAR-NUMBER encoding of numbers.",
		ArgsUsage: "NUMBER...",
		Action: func(c *cli.Context) error {
			for _, arg := range c.Args().Slice() {
				n, e := strconv.ParseUint(arg, 0, 64)
				if e != nil {
					return e
				}
				wire, e := tlv.VarNum(n).Encode(nil)
				if e != nil {
					return fmt.Errorf("%s: %w", arg, e)
				}
				fmt.Fprintf(c.App.Writer, "%d %X\n", n, wire)
			}
			return nil
		},
	})
}
