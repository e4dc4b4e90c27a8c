package tlv

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// FlagBits maps flag names to bit masks.
type FlagBits map[string]uint64

// MergeFlagBits combines several FlagBits.
// It panics if a flag name appears in more than one input.
func MergeFlagBits(sets ...FlagBits) FlagBits {
	merged := FlagBits{}
	for _, set := range sets {
		for name, bit := range set {
			if _, ok := merged[name]; ok {
				panic(fmt.Errorf("duplicate flag name %s", name))
			}
			merged[name] = bit
		}
	}
	return merged
}

// Names returns names of flags that are set in v, in lexical order.
func (fb FlagBits) Names(v uint64) (names []string) {
	for _, name := range slices.Sorted(maps.Keys(fb)) {
		if bit := fb[name]; bit != 0 && v&bit == bit {
			names = append(names, name)
		}
	}
	return names
}

// String formats v as hexadecimal followed by names of flags that are set.
func (fb FlagBits) String(v uint64) string {
	names := fb.Names(v)
	if len(names) == 0 {
		return fmt.Sprintf("0x%X", v)
	}
	return fmt.Sprintf("0x%X(%s)", v, strings.Join(names, "|"))
}
