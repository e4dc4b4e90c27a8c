package nfdmgmt

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/usnistgov/ndntlv/core/optional"
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Error conditions.
var (
	ErrVerb            = errors.New("unknown command verb")
	ErrMissingParam    = errors.New("missing required parameter")
	ErrUnexpectedParam = errors.New("unexpected parameter")
	ErrFlagBits        = errors.New("flag bits not allowed")
	ErrStatus          = errors.New("command failed with status")
)

// Command describes parameters of an NFD control command.
type Command struct {
	// Verb is module and verb, such as "rib/register".
	Verb string
	// Required lists keys of required fields.
	Required []string
	// Optional lists keys of optional fields.
	Optional []string
	// FlagBits lists flags that may appear in Flags and Mask, if Flags is permitted.
	FlagBits tlv.FlagBits
}

// Allows determines whether a field key may appear in the command.
func (cmd Command) Allows(key string) bool {
	return slices.Contains(cmd.Required, key) || slices.Contains(cmd.Optional, key)
}

var commandList = []Command{
	{
		Verb:     "faces/create",
		Required: []string{"uri"},
		Optional: []string{"localUri", "facePersistency", "baseCongestionMarkingInterval", "defaultCongestionThreshold", "mtu", "flags", "mask"},
		FlagBits: FaceFlags,
	},
	{
		Verb:     "faces/update",
		Optional: []string{"faceId", "facePersistency", "baseCongestionMarkingInterval", "defaultCongestionThreshold", "flags", "mask"},
		FlagBits: FaceFlags,
	},
	{
		Verb:     "faces/destroy",
		Required: []string{"faceId"},
	},
	{
		Verb:     "strategy-choice/set",
		Required: []string{"name", "strategy"},
	},
	{
		Verb:     "strategy-choice/unset",
		Required: []string{"name"},
	},
	{
		Verb:     "rib/register",
		Required: []string{"name"},
		Optional: []string{"faceId", "origin", "cost", "flags", "expirationPeriod"},
		FlagBits: RouteFlags,
	},
	{
		Verb:     "rib/unregister",
		Required: []string{"name"},
		Optional: []string{"faceId", "origin"},
	},
}

// Commands contains known NFD control commands, keyed by verb.
var Commands = func() map[string]Command {
	m := map[string]Command{}
	for _, cmd := range commandList {
		m[cmd.Verb] = cmd
	}
	return m
}()

// ValidateCommand checks ControlParameters against the requirements of a command.
// It reports every violation found.
func ValidateCommand(verb string, p ControlParameters) (e error) {
	cmd, ok := Commands[verb]
	if !ok {
		return fmt.Errorf("%w %s", ErrVerb, verb)
	}

	for _, key := range cmd.Required {
		if !ControlParametersType.Has(&p, key) {
			e = multierr.Append(e, fmt.Errorf("%s: %w %s", verb, ErrMissingParam, key))
		}
	}
	for _, key := range ControlParametersType.PresentKeys(&p) {
		if !cmd.Allows(key) {
			e = multierr.Append(e, fmt.Errorf("%s: %w %s", verb, ErrUnexpectedParam, key))
		}
	}

	var allowedBits uint64
	for _, bit := range cmd.FlagBits {
		allowedBits |= bit
	}
	for _, f := range []struct {
		key   string
		value optional.Optional[uint64]
	}{{"flags", p.Flags}, {"mask", p.Mask}} {
		if v, ok := f.value.Get(); ok && cmd.Allows(f.key) && v&^allowedBits != 0 {
			e = multierr.Append(e, fmt.Errorf("%s: %s=0x%X: %w", verb, f.key, v, ErrFlagBits))
		}
	}
	return e
}

// MakeCommandName constructs the name of a control command Interest.
// The name is prefix, followed by verb components, followed by a GenericNameComponent containing
// ControlParameters.
// The Interest still needs to be signed.
func MakeCommandName(prefix ndn.Name, verb string, p ControlParameters) (ndn.Name, error) {
	if e := ValidateCommand(verb, p); e != nil {
		logger.Debug("invalid command parameters",
			zap.String("verb", verb),
			zap.Stringer("params", p),
			zap.Errors("errors", multierr.Errors(e)),
		)
		return nil, e
	}

	value, e := tlv.EncodeFrom(p)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", verb, e)
	}

	name := prefix.Append(ndn.ParseName(verb)...)
	name = append(name, ndn.MakeNameComponent(an.TtGenericNameComponent, value))
	logger.Debug("command name",
		zap.String("verb", verb),
		zap.Stringer("params", p),
		zap.Int("size", name.Length()),
	)
	return name, nil
}

// SplitCommandName extracts verb and ControlParameters from a control command name.
// prefix must match the beginning of name.
// Trailing components after ControlParameters, such as signature components, are ignored.
func SplitCommandName(prefix, name ndn.Name) (verb string, p ControlParameters, e error) {
	if !prefix.IsPrefixOf(name) || len(name) < len(prefix)+3 {
		return "", p, fmt.Errorf("%w %s", ErrVerb, name)
	}
	tokens := []string{name[len(prefix)].String(), name[len(prefix)+1].String()}
	verb = strings.Join(tokens, "/")
	e = tlv.Decode(name[len(prefix)+2].Value, &p)
	return verb, p, e
}
