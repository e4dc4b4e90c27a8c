package an

// TLV-TYPE assigned numbers.
const (
	TtInvalid = 0x00

	TtName                            = 0x07
	TtGenericNameComponent            = 0x08
	TtImplicitSha256DigestComponent   = 0x01
	TtParametersSha256DigestComponent = 0x02
	TtKeywordNameComponent            = 0x20
	TtSegmentNameComponent            = 0x32
	TtByteOffsetNameComponent         = 0x34
	TtVersionNameComponent            = 0x36
	TtTimestampNameComponent          = 0x38
	TtSequenceNumNameComponent        = 0x3A

	TtInterest = 0x05
	TtData     = 0x06
	TtContent  = 0x15

	TtSigType    = 0x1B
	TtKeyLocator = 0x1C
	TtKeyDigest  = 0x1D

	TtValidityPeriod = 0xFD
	TtNotBefore      = 0xFE
	TtNotAfter       = 0xFF
)
