// Package nfdmgmt implements NFD Management ControlParameters and ControlResponse structures.
//
// It prepares control command names but does not send them.
package nfdmgmt

import (
	"github.com/usnistgov/ndntlv/core/logging"
	"github.com/usnistgov/ndntlv/ndn"
)

var logger = logging.New("nfdmgmt")

// Command prefixes.
var (
	PrefixLocalhost = ndn.ParseName("/localhost/nfd")
	PrefixLocalhop  = ndn.ParseName("/localhop/nfd")
)
