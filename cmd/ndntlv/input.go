package main

import (
	"encoding/hex"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/urfave/cli/v2"
)

var (
	inputFile   string
	inputBinary bool
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:        "in",
		Usage:       "Input `file`; read from stdin if omitted.",
		Destination: &inputFile,
	},
	&cli.BoolFlag{
		Name:        "binary",
		Usage:       "Input is binary instead of hexadecimal.",
		Destination: &inputBinary,
	},
}

// readInput reads the command input as raw bytes.
// Hexadecimal input may contain whitespace and may use either case.
func readInput(c *cli.Context) (wire []byte, e error) {
	if inputFile == "" {
		wire, e = io.ReadAll(c.App.Reader)
	} else {
		wire, e = os.ReadFile(inputFile)
	}
	if e != nil || inputBinary {
		return wire, e
	}

	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(wire))
	return hex.DecodeString(s)
}
