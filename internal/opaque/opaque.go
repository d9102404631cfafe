// Package opaque renders spans that could not be decoded structurally.
package opaque

import (
	"encoding/hex"
	"fmt"

	"github.com/danmuck/arpscope/internal/arp"
)

// Data records an undecodable span as a single entry on its sink.
type Data struct {
	Sink arp.Sink
	// Dump, when set, carries a hex dump of the span in the entry text.
	Dump bool
}

// Opaque implements arp.Fallback. Bounds are clamped to buf.
func (d Data) Opaque(buf []byte, offset, length int) {
	if d.Sink == nil {
		return
	}
	span := Span(buf, offset, length)
	e := arp.Entry{
		Field:  arp.FieldData,
		Abbrev: arp.FieldData.String(),
		Offset: offset,
		Length: len(span),
		Label:  fmt.Sprintf("Data (%d bytes)", len(span)),
	}
	if d.Dump {
		e.Text = hex.Dump(span)
	}
	d.Sink.Add(e)
}

// Span returns buf[offset:offset+length] clamped to the buffer.
func Span(buf []byte, offset, length int) []byte {
	if offset < 0 || offset >= len(buf) || length <= 0 {
		return nil
	}
	end := offset + length
	if end > len(buf) || end < offset {
		end = len(buf)
	}
	return buf[offset:end]
}
