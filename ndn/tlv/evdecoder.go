package tlv

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// autoOrderStep is the order increment for rules added without explicit Order.
const autoOrderStep = 100

// EvdHandler handles a recognized TLV element.
type EvdHandler[R any] func(r R, de DecodingElement) error

// UnknownHandler receives an unrecognized TLV element.
// lastOrder is the Order of the most recently recognized element, or zero if none.
// It returns true if the element has been consumed, or false to apply the criticality rule.
type UnknownHandler[R any] func(r R, de DecodingElement, lastOrder int) bool

// EvdRule contains constraints of a TLV-TYPE in EvDecoder.
type EvdRule struct {
	// Order restricts the relative position of elements.
	// An element must not appear after an element of greater Order.
	// Zero means next automatic order, which follows the previously added rule.
	Order int
	// Required indicates the element must appear at least once.
	Required bool
	// Repeat indicates the element may appear multiple times.
	Repeat bool
}

type evdRule[R any] struct {
	EvdRule
	handler  EvdHandler[R]
	required int
}

// EvDecoder is an evolvable decoder of a TLV structure.
// It dispatches each child element to a handler according to its TLV-TYPE, while enforcing
// order and cardinality constraints and the criticality rule for unrecognized TLV-TYPEs.
//
// An EvDecoder should be fully configured before use.
// After that, it may be used concurrently.
type EvDecoder[R any] struct {
	title      string
	topTypes   []uint32
	rules      map[uint32]*evdRule[R]
	required   []uint32
	nextOrder  int
	isCritical IsCritical
	unknown    UnknownHandler[R]
}

// NewEvDecoder creates an EvDecoder.
// title appears in error messages.
// topTypes lists acceptable TLV-TYPEs of the outer element; empty means any.
func NewEvDecoder[R any](title string, topTypes ...uint32) *EvDecoder[R] {
	return &EvDecoder[R]{
		title:      title,
		topTypes:   topTypes,
		rules:      map[uint32]*evdRule[R]{},
		isCritical: IsCriticalType,
	}
}

// Title returns the title.
func (evd *EvDecoder[R]) Title() string {
	return evd.title
}

// Add registers a rule for a TLV-TYPE.
// It panics if the TLV-TYPE already has a rule.
func (evd *EvDecoder[R]) Add(typ uint32, h EvdHandler[R], rule EvdRule) *EvDecoder[R] {
	if _, ok := evd.rules[typ]; ok {
		panic(fmt.Errorf("%s: duplicate rule for TLV-TYPE 0x%X", evd.title, typ))
	}

	if rule.Order == 0 {
		evd.nextOrder += autoOrderStep
		rule.Order = evd.nextOrder
	}

	r := &evdRule[R]{EvdRule: rule, handler: h, required: -1}
	if rule.Required {
		r.required = len(evd.required)
		evd.required = append(evd.required, typ)
	}
	evd.rules[typ] = r
	return evd
}

// SetIsCritical changes the criticality rule for unrecognized TLV-TYPEs.
// The default is IsCriticalType.
func (evd *EvDecoder[R]) SetIsCritical(f IsCritical) *EvDecoder[R] {
	evd.isCritical = f
	return evd
}

// SetUnknown installs a handler for unrecognized TLV-TYPEs.
func (evd *EvDecoder[R]) SetUnknown(h UnknownHandler[R]) *EvDecoder[R] {
	evd.unknown = h
	return evd
}

// Decode decodes a buffer that contains exactly one TLV element.
func (evd *EvDecoder[R]) Decode(r R, wire []byte) error {
	d := DecodingBuffer(wire)
	de, e := d.Element()
	if e != nil {
		return fmt.Errorf("%s: %w", evd.title, e)
	}
	if e := evd.DecodeElement(r, de.Type, de.Value); e != nil {
		return e
	}
	if e := d.ErrUnlessEOF(); e != nil {
		return fmt.Errorf("%s: %w", evd.title, e)
	}
	return nil
}

// DecodeElement decodes a TLV element, after checking its TLV-TYPE.
func (evd *EvDecoder[R]) DecodeElement(r R, typ uint32, value []byte) error {
	if len(evd.topTypes) > 0 && !slices.Contains(evd.topTypes, typ) {
		return fmt.Errorf("%s: %w", evd.title, ErrTypeExpect(evd.topTypes[0], typ))
	}
	return evd.DecodeValue(r, value)
}

// DecodeValue decodes a TLV-VALUE as a sequence of child elements.
func (evd *EvDecoder[R]) DecodeValue(r R, value []byte) error {
	d := DecodingBuffer(value)
	currentOrder, lastOrder := 0, 0
	seen := make([]bool, len(evd.required))
	for !d.EOF() {
		de, e := d.Element()
		if e != nil {
			return fmt.Errorf("%s: %w", evd.title, e)
		}

		rule := evd.rules[de.Type]
		if rule == nil {
			if evd.unknown != nil && evd.unknown(r, de, lastOrder) {
				continue
			}
			if evd.isCritical(de.Type) {
				return fmt.Errorf("%s: TLV-TYPE 0x%X: %w", evd.title, de.Type, ErrCritical)
			}
			continue
		}

		if rule.Order < currentOrder {
			return fmt.Errorf("%s: TLV-TYPE 0x%X: %w", evd.title, de.Type, ErrOrder)
		}
		if rule.Repeat {
			currentOrder = rule.Order
		} else {
			currentOrder = rule.Order + 1
		}
		lastOrder = rule.Order
		if rule.required >= 0 {
			seen[rule.required] = true
		}

		if e := rule.handler(r, de); e != nil {
			return fmt.Errorf("%s: TLV-TYPE 0x%X: %w", evd.title, de.Type, e)
		}
	}

	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("%s: TLV-TYPE 0x%X: %w", evd.title, evd.required[i], ErrRequired)
		}
	}
	return nil
}
