package arp

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Message is a fully decoded ARP/RARP message.
type Message struct {
	Header Header
	Offset int
	Length int
	Fields [4]AddressField

	SenderHardware string
	SenderProtocol string
	TargetHardware string
	TargetProtocol string

	Protocol string
	Info     string
}

// Address returns the rendered address for role.
func (m *Message) Address(r Role) string {
	switch r {
	case SenderHardware:
		return m.SenderHardware
	case SenderProtocol:
		return m.SenderProtocol
	case TargetHardware:
		return m.TargetHardware
	case TargetProtocol:
		return m.TargetProtocol
	default:
		return ""
	}
}

// Decoder is immutable once built and safe for concurrent use.
type Decoder struct {
	catalog  *Catalog
	renderer Renderer
	logger   zerolog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithCatalog sets the name catalog. A nil catalog keeps the default.
func WithCatalog(c *Catalog) Option {
	return func(d *Decoder) {
		if c != nil {
			d.catalog = c
		}
	}
}

// WithRenderer sets the address renderer.
func WithRenderer(r Renderer) Option {
	return func(d *Decoder) {
		d.renderer = r
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// NewDecoder builds a decoder over the default catalog and renderer, then applies opts.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		catalog:  DefaultCatalog(),
		renderer: DefaultRenderer(),
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Catalog returns the catalog the decoder resolves names with.
func (d *Decoder) Catalog() *Catalog {
	return d.catalog
}

// Decode parses and renders v. Nothing is returned on truncation but the error.
func (d *Decoder) Decode(v View) (*Message, error) {
	layout, err := Parse(v)
	if err != nil {
		return nil, err
	}

	m := &Message{
		Header: layout.Header,
		Offset: layout.Offset,
		Length: layout.Length,
		Fields: layout.Fields,
	}
	m.SenderHardware = d.renderer.RenderField(layout.Header, layout.Fields[SenderHardware])
	m.SenderProtocol = d.renderer.RenderField(layout.Header, layout.Fields[SenderProtocol])
	m.TargetHardware = d.renderer.RenderField(layout.Header, layout.Fields[TargetHardware])
	m.TargetProtocol = d.renderer.RenderField(layout.Header, layout.Fields[TargetProtocol])
	m.Protocol, m.Info = Summarize(
		layout.Header.Opcode,
		m.SenderHardware,
		m.SenderProtocol,
		m.TargetHardware,
		m.TargetProtocol,
	)
	return m, nil
}

// Dissect decodes v and emits its entries to sink. A truncated message is
// handed whole to fallback and no entries are emitted.
func (d *Decoder) Dissect(v View, sink Sink, fallback Fallback) (*Message, error) {
	m, err := d.Decode(v)
	if err != nil {
		d.logger.Debug().
			Err(err).
			Int("offset", v.Offset).
			Int("available", v.Available()).
			Msg("arp: delegating to opaque data")
		if fallback != nil {
			fallback.Opaque(v.Buf, v.Offset, v.Available())
		}
		return nil, err
	}
	if sink != nil {
		for _, e := range m.Entries(d.catalog) {
			sink.Add(e)
		}
	}
	return m, nil
}

// Entries lists the message fields in emission order: the whole message
// first, then header fields, then the four addresses.
func (m *Message) Entries(c *Catalog) []Entry {
	if c == nil {
		c = DefaultCatalog()
	}
	h := m.Header
	opName, opKnown := c.OpcodeName(h.Opcode)

	top := opName
	if !opKnown {
		top = fmt.Sprintf("Unknown ARP (opcode 0x%04x)", uint16(h.Opcode))
	}
	hwName, ok := c.HardwareName(h.HardwareType)
	if !ok {
		hwName = fmt.Sprintf("Unknown (0x%04x)", h.HardwareType)
	}
	protoName, ok := c.ProtocolName(h.ProtocolType)
	if !ok {
		protoName = fmt.Sprintf("Unknown (0x%04x)", h.ProtocolType)
	}
	opLabel := opName
	if !opKnown {
		opLabel = "Unknown"
	}

	out := make([]Entry, 0, 10)
	out = append(out,
		newEntry(FieldProtocol, m.Offset, m.Length, 0, top, top),
		newEntry(FieldHardwareType, m.Offset+offHardwareType, 2, uint64(h.HardwareType), hwName,
			"Hardware type: "+hwName),
		newEntry(FieldProtocolType, m.Offset+offProtocolType, 2, uint64(h.ProtocolType), protoName,
			"Protocol type: "+protoName),
		newEntry(FieldHardwareSize, m.Offset+offHardwareLen, 1, uint64(h.HardwareLen), "",
			fmt.Sprintf("Hardware size: %d", h.HardwareLen)),
		newEntry(FieldProtocolSize, m.Offset+offProtocolLen, 1, uint64(h.ProtocolLen), "",
			fmt.Sprintf("Protocol size: %d", h.ProtocolLen)),
		newEntry(FieldOpcode, m.Offset+offOpcode, 2, uint64(h.Opcode), opLabel,
			fmt.Sprintf("Opcode: 0x%04x (%s)", uint16(h.Opcode), opLabel)),
	)
	for _, f := range m.Fields {
		id := addressFieldIDs[f.Role]
		info, _ := id.Info()
		text := m.Address(f.Role)
		out = append(out, newEntry(id, f.Offset, f.Length, 0, text, info.Name+": "+text))
	}
	return out
}

func newEntry(id FieldID, offset, length int, value uint64, text, label string) Entry {
	return Entry{
		Field:  id,
		Abbrev: id.String(),
		Offset: offset,
		Length: length,
		Value:  value,
		Text:   text,
		Label:  label,
	}
}
