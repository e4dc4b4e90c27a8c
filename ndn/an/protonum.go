package an

// Protocol numbers for NDN over lower layers.
const (
	EtherTypeNDN = 0x8624
	UDPPortNDN   = 6363
	TCPPortNDN   = 6363
	WSPortNDN    = 9696
)

// EtherMulticastNDN is the NDN Ethernet multicast address.
const EtherMulticastNDN = "01:00:5e:00:17:aa"
