package an

// State Vector Sync TLV-TYPE assigned numbers.
const (
	TtStateVector      = 0xC9
	TtStateVectorEntry = 0xCA
	TtSeqNo            = 0xCC
	TtMappingData      = 0xCD
	TtMappingEntry     = 0xCE
)
