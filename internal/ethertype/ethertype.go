// Package ethertype resolves ethertype codes to names using gopacket's
// generated enum metadata.
package ethertype

import "github.com/google/gopacket/layers"

// gopacket fills every unassigned slot with this name.
const unknownName = "UnknownEthernetType"

// Names implements name lookup over layers.EthernetTypeMetadata.
type Names struct{}

// Name returns the registered name for code. LLC (0) is a gopacket
// pseudo-type, not an ethertype, and reports as unknown.
func (Names) Name(code uint16) (string, bool) {
	t := layers.EthernetType(code)
	if t == layers.EthernetTypeLLC {
		return "", false
	}
	name := layers.EthernetTypeMetadata[t].Name
	if name == "" || name == unknownName {
		return "", false
	}
	return name, true
}

