// Package nnduration provides JSON-compatible non-negative duration types.
package nnduration

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

func parse(input string, unit time.Duration) (value uint64, e error) {
	if d, e := time.ParseDuration(input); e == nil {
		if d < 0 {
			return 0, strconv.ErrRange
		}
		return uint64(d / unit), nil
	}
	return strconv.ParseUint(input, 10, 64)
}

// Milliseconds is a duration in milliseconds.
// In JSON, it may be written as a non-negative integer or a duration string recognized by time.ParseDuration.
type Milliseconds uint64

var (
	_ json.Marshaler   = Milliseconds(0)
	_ json.Unmarshaler = (*Milliseconds)(nil)
)

// Duration converts to time.Duration.
func (d Milliseconds) Duration() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// DurationOr converts to time.Duration, using dflt if d is zero.
func (d Milliseconds) DurationOr(dflt Milliseconds) time.Duration {
	if d == 0 {
		return dflt.Duration()
	}
	return d.Duration()
}

// MarshalJSON implements json.Marshaler interface.
func (d Milliseconds) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(d), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (d *Milliseconds) UnmarshalJSON(p []byte) error {
	value, e := parse(strings.Trim(string(p), `"`), time.Millisecond)
	if e != nil {
		return e
	}
	*d = Milliseconds(value)
	return nil
}
