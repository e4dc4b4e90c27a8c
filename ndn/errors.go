package ndn

import "errors"

// Error conditions.
var (
	ErrComponentType = errors.New("NameComponent TLV-TYPE out of range")
	ErrDigestLength  = errors.New("digest component must have 32 octets")
)
