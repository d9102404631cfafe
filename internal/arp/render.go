package arp

import (
	"net/netip"
	"strings"
)

// Domain selects which type code governs an address: the hardware type or
// the protocol type.
type Domain int

const (
	DomainHardware Domain = iota
	DomainProtocol
)

type addrStyle int

const (
	styleGeneric addrStyle = iota
	styleEthernet
	styleIPv4
)

func classify(d Domain, code uint16, length int) addrStyle {
	switch d {
	case DomainHardware:
		switch code {
		case HardwareEthernet, HardwareEEthernet, HardwareIEEE802:
			if length == 6 {
				return styleEthernet
			}
		}
	case DomainProtocol:
		if code == ProtocolIPv4 && length == 4 {
			return styleIPv4
		}
	}
	return styleGeneric
}

// Renderer turns address bytes into text.
type Renderer struct {
	// MACSeparator joins the six groups of an Ethernet-style address.
	MACSeparator string
	// ByteSeparator joins hex pairs of addresses without a dedicated format.
	ByteSeparator string
}

// DefaultRenderer uses ':' for both separators.
func DefaultRenderer() Renderer {
	return Renderer{MACSeparator: ":", ByteSeparator: ":"}
}

// Render never fails. When length exceeds len(span) only the bytes of span
// are rendered.
func (r Renderer) Render(span []byte, length int, code uint16, d Domain) string {
	if length < 0 {
		length = 0
	}
	if length > len(span) {
		length = len(span)
	}
	b := span[:length]

	switch classify(d, code, length) {
	case styleEthernet:
		return joinHex(b, r.MACSeparator)
	case styleIPv4:
		return netip.AddrFrom4([4]byte{b[0], b[1], b[2], b[3]}).String()
	default:
		return joinHex(b, r.ByteSeparator)
	}
}

// RenderField renders f using the header type code matching its role.
func (r Renderer) RenderField(h Header, f AddressField) string {
	code := h.ProtocolType
	if f.Role.Domain() == DomainHardware {
		code = h.HardwareType
	}
	return r.Render(f.Bytes, f.Length, code, f.Role.Domain())
}

const hexDigits = "0123456789abcdef"

func joinHex(b []byte, sep string) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b)*2 + (len(b)-1)*len(sep))
	for i, c := range b {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0x0f])
	}
	return sb.String()
}
