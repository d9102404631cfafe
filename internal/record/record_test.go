package record

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/danmuck/arpscope/internal/arp"
	"github.com/rs/zerolog"
)

func replyMessage() []byte {
	return []byte{
		0x00, 0x01, 0x08, 0x00, 0x06, 0x04, 0x00, 0x02,
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 10, 0, 0, 1,
		0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 10, 0, 0, 2,
	}
}

func TestTreeCollectsInOrder(t *testing.T) {
	tree := NewTree()
	if _, err := arp.NewDecoder().Dissect(arp.View{Buf: replyMessage()}, tree, nil); err != nil {
		t.Fatalf("dissect: %v", err)
	}
	if tree.Len() != 10 {
		t.Fatalf("expected 10 entries, got %d", tree.Len())
	}
	e, ok := tree.Find(arp.FieldSenderHardware)
	if !ok || e.Text != "00:11:22:33:44:55" || e.Offset != 8 {
		t.Fatalf("unexpected sender hardware entry: %+v", e)
	}
	entries := tree.Entries()
	entries[0].Label = "mutated"
	if top, _ := tree.Find(arp.FieldProtocol); top.Label != "ARP reply" {
		t.Fatalf("Entries must return a copy, got %q", top.Label)
	}
}

func TestFilterSkipsUnwanted(t *testing.T) {
	tree := NewTree()
	f := NewFilter(tree, arp.FieldOpcode, arp.FieldTargetProtocol)
	if _, err := arp.NewDecoder().Dissect(arp.View{Buf: replyMessage()}, f, nil); err != nil {
		t.Fatalf("dissect: %v", err)
	}
	got := tree.Entries()
	if len(got) != 2 || got[0].Field != arp.FieldOpcode || got[1].Text != "10.0.0.2" {
		t.Fatalf("unexpected filtered entries: %+v", got)
	}
	if f.Wants(arp.FieldHardwareType) {
		t.Fatalf("hardware type must not be wanted")
	}
	if !NewFilter(tree).Wants(arp.FieldHardwareType) {
		t.Fatalf("empty filter must pass everything")
	}
	if NewFilter(nil).Wants(arp.FieldOpcode) {
		t.Fatalf("filter without a sink wants nothing")
	}
}

func TestLogSinkAndTee(t *testing.T) {
	var buf bytes.Buffer
	tree := NewTree()
	sink := Tee{tree, nil, LogSink{Logger: zerolog.New(&buf), Level: zerolog.InfoLevel}}
	if _, err := arp.NewDecoder().Dissect(arp.View{Buf: replyMessage()}, sink, nil); err != nil {
		t.Fatalf("dissect: %v", err)
	}
	if tree.Len() != 10 {
		t.Fatalf("tee did not reach tree")
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 log lines, got %d", len(lines))
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if first["field"] != "arp" || first["label"] != "ARP reply" {
		t.Fatalf("unexpected log line: %v", first)
	}
}

func TestFilterDropsOpaqueDataUnlessWanted(t *testing.T) {
	tree := NewTree()
	f := NewFilter(tree, arp.FieldProtocol)
	f.Add(arp.Entry{Field: arp.FieldData, Abbrev: "data", Label: "Data (3 bytes)"})
	if _, ok := tree.Find(arp.FieldProtocol); ok {
		t.Fatalf("opaque data surfaced as top-level field")
	}
	if tree.Len() != 0 {
		t.Fatalf("filter forwarded unwanted data entry")
	}
	NewFilter(tree, arp.FieldData).Add(arp.Entry{Field: arp.FieldData, Abbrev: "data"})
	if _, ok := tree.Find(arp.FieldData); !ok {
		t.Fatalf("data entry not forwarded when wanted")
	}
}
