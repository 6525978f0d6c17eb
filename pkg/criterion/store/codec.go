package store

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes document values for storage media that hold bytes.
// Implementations must round-trip: Unmarshal(Marshal(v)) restores v.
type Codec interface {
	// Name identifies the codec in configuration files.
	Name() string

	// Marshal encodes a document value.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes into a document value.
	Unmarshal(data []byte, v any) error
}

// JSONCodec encodes documents as JSON. The default codec: readable in
// the database at the cost of size.
type JSONCodec struct{}

// Name returns "json".
func (JSONCodec) Name() string { return "json" }

// Marshal implements Codec.
func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal implements Codec.
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// MsgpackCodec encodes documents as msgpack: compact and fast, opaque
// in the database.
type MsgpackCodec struct{}

// Name returns "msgpack".
func (MsgpackCodec) Name() string { return "msgpack" }

// Marshal implements Codec.
func (MsgpackCodec) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

// Unmarshal implements Codec.
func (MsgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }
