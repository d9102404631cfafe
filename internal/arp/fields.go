package arp

// FieldID identifies an emitted field.
type FieldID uint16

const (
	FieldProtocol FieldID = iota
	FieldHardwareType
	FieldProtocolType
	FieldHardwareSize
	FieldProtocolSize
	FieldOpcode
	FieldSenderHardware
	FieldSenderProtocol
	FieldTargetHardware
	FieldTargetProtocol
	// FieldData marks a span handed to the opaque fallback. Entries never emits it.
	FieldData
)

// FieldKind is the value type carried by a field.
type FieldKind string

const (
	KindNone   FieldKind = "none"
	KindUint8  FieldKind = "uint8"
	KindUint16 FieldKind = "uint16"
	KindBytes  FieldKind = "bytes"
)

// FieldBase is the preferred numeric display base.
type FieldBase string

const (
	BaseNone FieldBase = "none"
	BaseDec  FieldBase = "dec"
	BaseHex  FieldBase = "hex"
)

// FieldInfo is static metadata for a field, keyed by a filter-style abbreviation.
type FieldInfo struct {
	ID     FieldID   `json:"id"`
	Name   string    `json:"name"`
	Abbrev string    `json:"abbrev"`
	Kind   FieldKind `json:"kind"`
	Base   FieldBase `json:"base"`
}

var fieldInfos = [...]FieldInfo{
	FieldProtocol:       {FieldProtocol, "Address Resolution Protocol", "arp", KindNone, BaseNone},
	FieldHardwareType:   {FieldHardwareType, "Hardware type", "arp.hw.type", KindUint16, BaseHex},
	FieldProtocolType:   {FieldProtocolType, "Protocol type", "arp.proto.type", KindUint16, BaseHex},
	FieldHardwareSize:   {FieldHardwareSize, "Hardware size", "arp.hw.size", KindUint8, BaseDec},
	FieldProtocolSize:   {FieldProtocolSize, "Protocol size", "arp.proto.size", KindUint8, BaseDec},
	FieldOpcode:         {FieldOpcode, "Opcode", "arp.opcode", KindUint16, BaseHex},
	FieldSenderHardware: {FieldSenderHardware, "Sender hardware address", "arp.src.hw", KindBytes, BaseNone},
	FieldSenderProtocol: {FieldSenderProtocol, "Sender protocol address", "arp.src.proto", KindBytes, BaseNone},
	FieldTargetHardware: {FieldTargetHardware, "Target hardware address", "arp.dst.hw", KindBytes, BaseNone},
	FieldTargetProtocol: {FieldTargetProtocol, "Target protocol address", "arp.dst.proto", KindBytes, BaseNone},
	FieldData:           {FieldData, "Data", "data", KindBytes, BaseNone},
}

// Fields returns a copy of the field metadata in emission order, followed by FieldData.
func Fields() []FieldInfo {
	out := make([]FieldInfo, len(fieldInfos))
	copy(out, fieldInfos[:])
	return out
}

// Info returns metadata for id.
func (id FieldID) Info() (FieldInfo, bool) {
	if int(id) >= len(fieldInfos) {
		return FieldInfo{}, false
	}
	return fieldInfos[id], true
}

// FieldByAbbrev resolves a filter-style abbreviation such as "arp.opcode".
func FieldByAbbrev(abbrev string) (FieldID, bool) {
	for _, info := range fieldInfos {
		if info.Abbrev == abbrev {
			return info.ID, true
		}
	}
	return 0, false
}

func (id FieldID) String() string {
	if info, ok := id.Info(); ok {
		return info.Abbrev
	}
	return "unknown"
}

// addressFieldIDs maps an address role to its field.
var addressFieldIDs = [4]FieldID{
	SenderHardware: FieldSenderHardware,
	SenderProtocol: FieldSenderProtocol,
	TargetHardware: FieldTargetHardware,
	TargetProtocol: FieldTargetProtocol,
}
