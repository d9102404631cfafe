package arp

import "encoding/binary"

// HeaderSize is the fixed part preceding the four address fields.
const HeaderSize = 8

const (
	offHardwareType = 0
	offProtocolType = 2
	offHardwareLen  = 4
	offProtocolLen  = 5
	offOpcode       = 6
)

// View is a borrowed window onto captured bytes. The message starts at Offset.
type View struct {
	Buf    []byte
	Offset int
}

// Available reports how many captured bytes follow Offset.
func (v View) Available() int {
	if v.Offset < 0 || v.Offset >= len(v.Buf) {
		return 0
	}
	return len(v.Buf) - v.Offset
}

// Header is the fixed 8-byte ARP header.
type Header struct {
	HardwareType uint16
	ProtocolType uint16
	HardwareLen  uint8
	ProtocolLen  uint8
	Opcode       Opcode
}

// MessageLen is the full message size implied by the declared address lengths.
func (h Header) MessageLen() int {
	return HeaderSize + 2*int(h.HardwareLen) + 2*int(h.ProtocolLen)
}

// Role names one of the four address fields.
type Role int

const (
	SenderHardware Role = iota
	SenderProtocol
	TargetHardware
	TargetProtocol
)

func (r Role) String() string {
	switch r {
	case SenderHardware:
		return "sender hardware"
	case SenderProtocol:
		return "sender protocol"
	case TargetHardware:
		return "target hardware"
	case TargetProtocol:
		return "target protocol"
	default:
		return "unknown"
	}
}

// Domain reports whether the role carries a hardware or a protocol address.
func (r Role) Domain() Domain {
	if r == SenderHardware || r == TargetHardware {
		return DomainHardware
	}
	return DomainProtocol
}

// AddressField locates one address inside the original buffer.
type AddressField struct {
	Role   Role
	Offset int
	Length int
	Bytes  []byte
}

// Layout is a header whose whole message is known to be captured.
type Layout struct {
	Header Header
	Offset int
	Length int
	Fields [4]AddressField
}

// ParseHeader reads the fixed header at offset. available is the number of
// captured bytes from offset onward.
func ParseHeader(buf []byte, offset, available int) (Header, error) {
	if available < HeaderSize || offset < 0 || offset+HeaderSize > len(buf) {
		return Header{}, &TruncatedError{Kind: ErrTruncatedHeader, Need: HeaderSize, Have: available}
	}
	b := buf[offset : offset+HeaderSize]
	return Header{
		HardwareType: binary.BigEndian.Uint16(b[offHardwareType : offHardwareType+2]),
		ProtocolType: binary.BigEndian.Uint16(b[offProtocolType : offProtocolType+2]),
		HardwareLen:  b[offHardwareLen],
		ProtocolLen:  b[offProtocolLen],
		Opcode:       Opcode(binary.BigEndian.Uint16(b[offOpcode : offOpcode+2])),
	}, nil
}

// Parse validates the header and the declared address region of v.
func Parse(v View) (Layout, error) {
	available := v.Available()
	h, err := ParseHeader(v.Buf, v.Offset, available)
	if err != nil {
		return Layout{}, err
	}
	total := h.MessageLen()
	if available < total {
		return Layout{}, &TruncatedError{Kind: ErrTruncatedBody, Need: total, Have: available}
	}

	hln := int(h.HardwareLen)
	pln := int(h.ProtocolLen)
	lengths := [4]int{hln, pln, hln, pln}

	out := Layout{Header: h, Offset: v.Offset, Length: total}
	at := v.Offset + HeaderSize
	for i, n := range lengths {
		out.Fields[i] = AddressField{
			Role:   Role(i),
			Offset: at,
			Length: n,
			Bytes:  v.Buf[at : at+n : at+n],
		}
		at += n
	}
	return out, nil
}
