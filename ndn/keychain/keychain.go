// Package keychain implements certificate fields that are independent of signing algorithms.
package keychain

import (
	"errors"
)

// Error conditions.
var (
	ErrValidityPeriod = errors.New("bad ValidityPeriod")
)
