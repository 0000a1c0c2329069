// Package types provides domain models shared across surfacegen components.
//
// Kept free of the surface model so the storage layer and CLI can pass tree
// documents around without decoding them. ID utilities in ids.go import uuid.
package types

import "github.com/goccy/go-json"

// TreeID represents a UUIDv7 stored-tree identifier.
// String alias enables type safety while maintaining JSON and SQL text encoding.
// UUIDv7 time-ordering ensures sequential IDs cluster in B-tree indexes.
type TreeID string

// Document is a serialized surface tree in compact wire form.
// json.RawMessage wrapper keeps the stored bytes so checksums stay stable.
type Document json.RawMessage

// MarshalJSON implements json.Marshaler.
// Delegates to json.RawMessage to emit document bytes unchanged.
func (d Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return json.RawMessage(d).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
// Delegates to json.RawMessage to capture raw bytes without parsing.
func (d *Document) UnmarshalJSON(data []byte) error {
	return (*json.RawMessage)(d).UnmarshalJSON(data)
}

// Resource limits enforced by the tree library.
const (
	// MaxTreeNameLength bounds stored tree names.
	// 128 chars accommodates namespaced names like "wwizardry:fungal_forest/overworld".
	MaxTreeNameLength = 128

	// MaxDocumentSize limits a stored tree document.
	// 4MB is far above vanilla overworld rules (~200KB compact).
	MaxDocumentSize = 4 * 1024 * 1024
)
