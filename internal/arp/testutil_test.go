package arp

import (
	"encoding/binary"
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

func serializeARP(t *testing.T, a *layers.ARP) []byte {
	t.Helper()
	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true}, a); err != nil {
		t.Fatalf("serialize arp: %v", err)
	}
	return buf.Bytes()
}

func ethernetIPv4(op uint16, sha, spa, tha, tpa string) *layers.ARP {
	mustMAC := func(s string) []byte {
		hw, err := net.ParseMAC(s)
		if err != nil {
			panic(err)
		}
		return hw
	}
	return &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		Operation:         op,
		SourceHwAddress:   mustMAC(sha),
		SourceProtAddress: net.ParseIP(spa).To4(),
		DstHwAddress:      mustMAC(tha),
		DstProtAddress:    net.ParseIP(tpa).To4(),
	}
}

// rawMessage builds a message by hand for combinations gopacket refuses to encode.
func rawMessage(hrd, pro uint16, hln, pln uint8, op uint16, body []byte) []byte {
	b := make([]byte, HeaderSize, HeaderSize+len(body))
	binary.BigEndian.PutUint16(b[0:2], hrd)
	binary.BigEndian.PutUint16(b[2:4], pro)
	b[4] = hln
	b[5] = pln
	binary.BigEndian.PutUint16(b[6:8], op)
	return append(b, body...)
}
