package arp

// Entry is one labeled field record. Offset and Length locate the source
// bytes in the buffer the message was decoded from.
type Entry struct {
	Field  FieldID `json:"field"`
	Abbrev string  `json:"abbrev"`
	Offset int     `json:"offset"`
	Length int     `json:"length"`
	Value  uint64  `json:"value,omitempty"`
	Text   string  `json:"text,omitempty"`
	Label  string  `json:"label"`
}

// Sink accepts entries in emission order.
type Sink interface {
	Add(e Entry)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Entry)

func (f SinkFunc) Add(e Entry) { f(e) }

// Fallback receives spans that cannot be decoded as ARP.
type Fallback interface {
	Opaque(buf []byte, offset, length int)
}

// FallbackFunc adapts a function to Fallback.
type FallbackFunc func(buf []byte, offset, length int)

func (f FallbackFunc) Opaque(buf []byte, offset, length int) { f(buf, offset, length) }
