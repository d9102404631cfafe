package arp

import (
	"sort"
	"sync"

	"github.com/danmuck/arpscope/internal/ethertype"
)

// Hardware type codes (linux/if_arp.h, IANA arp-parameters).
const (
	HardwareNetROM    uint16 = 0
	HardwareEthernet  uint16 = 1
	HardwareEEthernet uint16 = 2
	HardwareAX25      uint16 = 3
	HardwarePronet    uint16 = 4
	HardwareChaos     uint16 = 5
	HardwareIEEE802   uint16 = 6
	HardwareARCNET    uint16 = 7
	HardwareHyperch   uint16 = 8
	HardwareLanstar   uint16 = 9
	HardwareAutonet   uint16 = 10
	HardwareLocalTalk uint16 = 11
	HardwareLocalNet  uint16 = 12
	HardwareUltraLink uint16 = 13
	HardwareSMDS      uint16 = 14
	HardwareDLCI      uint16 = 15
	HardwareATM       uint16 = 16
	HardwareHDLC      uint16 = 17
	HardwareFibreChan uint16 = 18
	HardwareATM2225   uint16 = 19
	HardwareSerial    uint16 = 20
	HardwareATM2      uint16 = 21
	HardwareMS188220  uint16 = 22
	HardwareMetricom  uint16 = 23
	HardwareIEEE1394  uint16 = 24
	HardwareMAPOS     uint16 = 25
	HardwareTwinax    uint16 = 26
	HardwareEUI64     uint16 = 27
)

// ProtocolIPv4 is the IPv4 ethertype, the only protocol type with a dedicated renderer.
const ProtocolIPv4 uint16 = 0x0800

// Opcode identifies the message kind.
type Opcode uint16

const (
	OpRequest        Opcode = 1
	OpReply          Opcode = 2
	OpReverseRequest Opcode = 3
	OpReverseReply   Opcode = 4
)

var hardwareNames = map[uint16]string{
	HardwareNetROM:    "NET/ROM pseudo",
	HardwareEthernet:  "Ethernet",
	HardwareEEthernet: "Experimental Ethernet",
	HardwareAX25:      "AX.25",
	HardwarePronet:    "ProNET",
	HardwareChaos:     "Chaos",
	HardwareIEEE802:   "IEEE 802",
	HardwareARCNET:    "ARCNET",
	HardwareHyperch:   "Hyperchannel",
	HardwareLanstar:   "Lanstar",
	HardwareAutonet:   "Autonet Short Address",
	HardwareLocalTalk: "Localtalk",
	HardwareLocalNet:  "LocalNet",
	HardwareUltraLink: "Ultra link",
	HardwareSMDS:      "SMDS",
	HardwareDLCI:      "Frame Relay DLCI",
	HardwareATM:       "ATM",
	HardwareHDLC:      "HDLC",
	HardwareFibreChan: "Fibre Channel",
	HardwareATM2225:   "ATM (RFC 2225)",
	HardwareSerial:    "Serial Line",
	HardwareATM2:      "ATM",
	HardwareMS188220:  "MIL-STD-188-220",
	HardwareMetricom:  "Metricom STRIP",
	HardwareIEEE1394:  "IEEE 1394.1995",
	HardwareMAPOS:     "MAPOS",
	HardwareTwinax:    "Twinaxial",
	HardwareEUI64:     "EUI-64",
}

var opcodeNames = map[Opcode]string{
	OpRequest:        "ARP request",
	OpReply:          "ARP reply",
	OpReverseRequest: "RARP request",
	OpReverseReply:   "RARP reply",
}

// ProtocolNamer resolves protocol-type codes, which share the ethertype namespace.
type ProtocolNamer interface {
	Name(code uint16) (string, bool)
}

// CatalogEntry is one code/name pair.
type CatalogEntry struct {
	Code uint16 `json:"code"`
	Name string `json:"name"`
}

// Catalog holds the code to name tables. It is never mutated after construction.
type Catalog struct {
	hardware  map[uint16]string
	protocols ProtocolNamer
}

// CatalogOption customizes a Catalog under construction.
type CatalogOption func(*Catalog)

// WithHardwareNames adds names for hardware codes missing from the built-in table.
// Built-in names always win.
func WithHardwareNames(names map[uint16]string) CatalogOption {
	return func(c *Catalog) {
		for code, name := range names {
			if _, ok := c.hardware[code]; ok || name == "" {
				continue
			}
			c.hardware[code] = name
		}
	}
}

// WithProtocolNamer replaces the ethertype catalog used for protocol-type names.
func WithProtocolNamer(n ProtocolNamer) CatalogOption {
	return func(c *Catalog) {
		if n != nil {
			c.protocols = n
		}
	}
}

// NewCatalog builds an immutable catalog from the built-in tables plus opts.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		hardware:  make(map[uint16]string, len(hardwareNames)),
		protocols: ethertype.Names{},
	}
	for code, name := range hardwareNames {
		c.hardware[code] = name
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// DefaultCatalog returns the process-wide catalog with built-in tables only.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// HardwareName returns the name for a hardware code.
func (c *Catalog) HardwareName(code uint16) (string, bool) {
	name, ok := c.hardware[code]
	return name, ok
}

// OpcodeName returns the name for op.
func (c *Catalog) OpcodeName(op Opcode) (string, bool) {
	name, ok := opcodeNames[op]
	return name, ok
}

// ProtocolName resolves a protocol-type code through the ethertype catalog.
func (c *Catalog) ProtocolName(code uint16) (string, bool) {
	return c.protocols.Name(code)
}

// HardwareTypes lists hardware names ordered by code.
func (c *Catalog) HardwareTypes() []CatalogEntry {
	list := make([]CatalogEntry, 0, len(c.hardware))
	for code, name := range c.hardware {
		list = append(list, CatalogEntry{Code: code, Name: name})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})
	return list
}

// Opcodes lists opcode names ordered by code.
func (c *Catalog) Opcodes() []CatalogEntry {
	list := make([]CatalogEntry, 0, len(opcodeNames))
	for op, name := range opcodeNames {
		list = append(list, CatalogEntry{Code: uint16(op), Name: name})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})
	return list
}
