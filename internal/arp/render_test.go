package arp

import (
	"strings"
	"testing"
)

func TestRenderEthernetFamily(t *testing.T) {
	r := DefaultRenderer()
	mac := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	for _, code := range []uint16{HardwareEthernet, HardwareEEthernet, HardwareIEEE802} {
		if got := r.Render(mac, 6, code, DomainHardware); got != "00:11:22:33:44:55" {
			t.Fatalf("code=%d unexpected mac: %q", code, got)
		}
	}

	dashed := Renderer{MACSeparator: "-", ByteSeparator: ":"}
	if got := dashed.Render(mac, 6, HardwareEthernet, DomainHardware); got != "00-11-22-33-44-55" {
		t.Fatalf("unexpected dashed mac: %q", got)
	}
}

func TestRenderIPv4(t *testing.T) {
	r := DefaultRenderer()
	if got := r.Render([]byte{192, 168, 1, 254}, 4, ProtocolIPv4, DomainProtocol); got != "192.168.1.254" {
		t.Fatalf("unexpected ipv4: %q", got)
	}
}

func TestRenderGenericFallback(t *testing.T) {
	r := Renderer{MACSeparator: "-", ByteSeparator: " "}
	cases := []struct {
		name   string
		span   []byte
		length int
		code   uint16
		domain Domain
		want   string
	}{
		{"ethernet wrong length", []byte{0xde, 0xad, 0xbe, 0xef}, 4, HardwareEthernet, DomainHardware, "de ad be ef"},
		{"non ethernet six bytes", []byte{1, 2, 3, 4, 5, 6}, 6, HardwareIEEE1394, DomainHardware, "01 02 03 04 05 06"},
		{"ipv4 code in hardware domain", []byte{10, 0, 0, 1}, 4, ProtocolIPv4, DomainHardware, "0a 00 00 01"},
		{"ipv4 wrong length", []byte{10, 0, 0, 1, 2}, 5, ProtocolIPv4, DomainProtocol, "0a 00 00 01 02"},
		{"ethernet code in protocol domain", []byte{1, 2, 3, 4, 5, 6}, 6, HardwareEthernet, DomainProtocol, "01 02 03 04 05 06"},
		{"empty", nil, 0, HardwareEthernet, DomainHardware, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Render(tc.span, tc.length, tc.code, tc.domain)
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestRenderGenericPairCount(t *testing.T) {
	r := DefaultRenderer()
	span := make([]byte, 255)
	for i := range span {
		span[i] = byte(i)
	}
	for _, n := range []int{1, 2, 5, 16, 255} {
		got := r.Render(span, n, 0xbeef, DomainProtocol)
		if parts := strings.Split(got, ":"); len(parts) != n {
			t.Fatalf("length=%d produced %d pairs", n, len(parts))
		}
	}
}

func TestRenderStopsAtSpanEnd(t *testing.T) {
	r := DefaultRenderer()
	got := r.Render([]byte{0xaa, 0xbb}, 6, HardwareEthernet, DomainHardware)
	if got != "aa:bb" {
		t.Fatalf("expected render bounded by span, got %q", got)
	}
	got = r.Render([]byte{10, 0}, 4, ProtocolIPv4, DomainProtocol)
	if got != "0a:00" {
		t.Fatalf("expected generic render of short ipv4 span, got %q", got)
	}
}
