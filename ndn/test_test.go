package ndn_test

import (
	"github.com/usnistgov/ndntlv/core/testenv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
	bytesEqual   = testenv.BytesEqual
)
