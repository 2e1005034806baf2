package protobuf

import "github.com/bgpfix/push"

// FieldEntry describes how to decode one field number: the wire type
// it must arrive as, and the callback that reads its value once the
// tag has been matched.
type FieldEntry struct {
	Wire  WireType
	Value push.Callback[any, any]
}

// FieldMap associates field numbers with FieldEntry decoders, the same
// role push/protobuf/field-map.c plays in the reference library: a
// per-message table the dispatch loop consults after reading each tag.
type FieldMap struct {
	entries map[int]FieldEntry
}

// NewFieldMap returns an empty field map.
func NewFieldMap() *FieldMap {
	return &FieldMap{entries: map[int]FieldEntry{}}
}

// Set registers the decoder for a field number, returning the map so
// calls can be chained.
func (fm *FieldMap) Set(field int, wire WireType, value push.Callback[any, any]) *FieldMap {
	fm.entries[field] = FieldEntry{Wire: wire, Value: value}
	return fm
}

func (fm *FieldMap) lookup(field int) (FieldEntry, bool) {
	e, ok := fm.entries[field]
	return e, ok
}
