package svs

import (
	"github.com/usnistgov/ndntlv/ndn"
	"github.com/usnistgov/ndntlv/ndn/an"
	"github.com/usnistgov/ndntlv/ndn/tlv"
	"golang.org/x/exp/slices"
)

// StateVectorEntry is the latest sequence number of a node.
type StateVectorEntry struct {
	Name  ndn.Name `json:"name"`
	SeqNo uint64   `json:"seqNo"`
}

// StateVectorEntryType describes StateVectorEntry encoding.
var StateVectorEntryType = func() *tlv.StructType[StateVectorEntry] {
	b := tlv.NewStructBuilder[StateVectorEntry]("StateVectorEntry", an.TtStateVectorEntry)
	tlv.StructAdd(b, an.TtName, "name", ndn.StructFieldName,
		func(e *StateVectorEntry) *ndn.Name { return &e.Name }, tlv.StructRequired())
	tlv.StructAdd(b, an.TtSeqNo, "seqNo", tlv.StructFieldNNI,
		func(e *StateVectorEntry) *uint64 { return &e.SeqNo }, tlv.StructRequired())
	return b.Build()
}()

// StateVector contains the latest sequence number of every known node.
// Each node name appears at most once.
type StateVector struct {
	Entries []StateVectorEntry `json:"entries"`
}

// StateVectorType describes StateVector encoding.
var StateVectorType = func() *tlv.StructType[StateVector] {
	b := tlv.NewStructBuilder[StateVector]("StateVector", an.TtStateVector)
	tlv.StructAddRepeated(b, an.TtStateVectorEntry, "entries", tlv.StructFieldNested(StateVectorEntryType),
		func(sv *StateVector) *[]StateVectorEntry { return &sv.Entries })
	return b.Build()
}()

var (
	_ tlv.Fielder     = StateVector{}
	_ tlv.Unmarshaler = (*StateVector)(nil)
)

func (sv StateVector) find(node ndn.Name) int {
	return slices.IndexFunc(sv.Entries, func(e StateVectorEntry) bool { return e.Name.Equal(node) })
}

// Get returns the sequence number of a node, or zero if the node is unknown.
func (sv StateVector) Get(node ndn.Name) uint64 {
	if i := sv.find(node); i >= 0 {
		return sv.Entries[i].SeqNo
	}
	return 0
}

// Set assigns the sequence number of a node.
func (sv *StateVector) Set(node ndn.Name, seqNo uint64) {
	if i := sv.find(node); i >= 0 {
		sv.Entries[i].SeqNo = seqNo
		return
	}
	sv.Entries = append(sv.Entries, StateVectorEntry{Name: node, SeqNo: seqNo})
}

// Merge raises each sequence number to the larger of sv and other.
// It returns the nodes whose sequence numbers in other are newer.
func (sv *StateVector) Merge(other StateVector) (updated []ndn.Name) {
	for _, e := range other.Entries {
		if e.SeqNo > sv.Get(e.Name) {
			sv.Set(e.Name, e.SeqNo)
			updated = append(updated, e.Name)
		}
	}
	return updated
}

// Field implements tlv.Fielder interface.
func (sv StateVector) Field() tlv.Field {
	return StateVectorType.Encode(&sv)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
// If a node appears more than once, the last entry wins.
func (sv *StateVector) UnmarshalTLV(typ uint32, value []byte) error {
	var decoded StateVector
	if e := StateVectorType.UnmarshalTLV(&decoded, typ, value); e != nil {
		return e
	}
	*sv = StateVector{}
	for _, e := range decoded.Entries {
		sv.Set(e.Name, e.SeqNo)
	}
	return nil
}

func (sv StateVector) String() string {
	return StateVectorType.String(&sv)
}
