package arp

import "fmt"

// Summarize builds the protocol label and the one-line info text.
// Reply and reverse reply share a template but fill it from opposite
// address pairs.
func Summarize(op Opcode, sha, spa, tha, tpa string) (protocol, info string) {
	protocol = "ARP"
	switch op {
	case OpRequest:
		info = fmt.Sprintf("Who has %s?  Tell %s", tpa, spa)
	case OpReply:
		info = fmt.Sprintf("%s is at %s", spa, sha)
	case OpReverseRequest:
		protocol = "RARP"
		info = fmt.Sprintf("Who is %s?  Tell %s", tha, sha)
	case OpReverseReply:
		protocol = "RARP"
		info = fmt.Sprintf("%s is at %s", sha, spa)
	default:
		info = fmt.Sprintf("Unknown ARP opcode 0x%04x", uint16(op))
	}
	return protocol, info
}
