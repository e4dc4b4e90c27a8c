package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/mgmt/nfdmgmt"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

//go:embed rib.schema.json
var ribSchema []byte

type ribInput struct {
	Name ndn.Name `json:"name"`
	nfdmgmt.RegisterOptions
}

type schemaError struct {
	*gojsonschema.Result
}

func (e schemaError) Error() string {
	var b strings.Builder
	fmt.Fprintln(&b, "JSON document failed schema validation:")
	for _, desc := range e.Result.Errors() {
		fmt.Fprintln(&b, "-", desc)
	}
	return b.String()
}

func readRibInput(r io.Reader) (input ribInput, e error) {
	j, e := io.ReadAll(r)
	if e != nil {
		return input, e
	}

	result, e := gojsonschema.Validate(gojsonschema.NewBytesLoader(ribSchema), gojsonschema.NewBytesLoader(j))
	if e != nil {
		return input, e
	}
	if !result.Valid() {
		return input, schemaError{result}
	}

	e = json.Unmarshal(j, &input)
	return input, e
}

// nfdcArgs returns an equivalent nfdc command line.
func nfdcArgs(verb string, p nfdmgmt.ControlParameters) (args []string) {
	args = []string{"nfdc", "route"}
	if verb == "rib/register" {
		args = append(args, "add")
	} else {
		args = append(args, "remove")
	}
	args = append(args, "prefix", p.Name.Unwrap().String())

	nni := func(key string, v uint64, ok bool) {
		if ok {
			args = append(args, key, strconv.FormatUint(v, 10))
		}
	}
	v, ok := p.FaceID.Get()
	nni("nexthop", v, ok)
	v, ok = p.Origin.Get()
	nni("origin", v, ok)
	v, ok = p.Cost.Get()
	nni("cost", v, ok)

	if verb == "rib/register" {
		if !p.Flag("ChildInherit") {
			args = append(args, "no-inherit")
		}
		if p.Flag("Capture") {
			args = append(args, "capture")
		}
		v, ok = p.ExpirationPeriod.Get()
		nni("expires", v, ok)
	}
	return args
}

func init() {
	var prefix string
	var unregister, nfdc bool
	defineCommand(&cli.Command{
		Name:  "rib",
		Usage: "Construct a prefix registration command from JSON options.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "prefix",
				Usage:       "Command `prefix`.",
				Value:       nfdmgmt.PrefixLocalhost.String(),
				Destination: &prefix,
			},
			&cli.BoolFlag{
				Name:        "unregister",
				Usage:       "Construct rib/unregister instead of rib/register.",
				Destination: &unregister,
			},
			&cli.BoolFlag{
				Name:        "nfdc",
				Usage:       "Also print an equivalent nfdc command line.",
				Destination: &nfdc,
			},
		},
		Action: func(c *cli.Context) error {
			input, e := readRibInput(c.App.Reader)
			if e != nil {
				return e
			}

			verb, p := "rib/register", nfdmgmt.RibRegisterParams(input.Name, input.RegisterOptions)
			if unregister {
				verb, p = "rib/unregister", nfdmgmt.RibUnregisterParams(input.Name, input.RegisterOptions)
			}
			logger.Info("prefix registration",
				zap.String("verb", verb),
				zap.Stringer("name", input.Name),
				zap.Duration("expiration", input.ExpirationPeriod()),
			)

			name, e := nfdmgmt.MakeCommandName(ndn.ParseName(prefix), verb, p)
			if e != nil {
				return e
			}
			fmt.Fprintln(c.App.Writer, p)
			fmt.Fprintln(c.App.Writer, name)
			if nfdc {
				fmt.Fprintln(c.App.Writer, shellquote.Join(nfdcArgs(verb, p)...))
			}
			return nil
		},
	})
}
