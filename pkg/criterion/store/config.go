package store

import (
	"fmt"

	"github.com/mwhitford/criterion/pkg/criterion/config"
)

// OpenFromConfig opens a store described by a configuration section:
//
//	store:
//	  path: ./documents.db   # omit for an in-memory store
//	  codec: json            # or msgpack
//
// An absent path selects MemoryStore; anything else, including
// ":memory:", selects SQLiteStore. An unknown codec name is an error.
// Options given here are applied after the configured ones, so code can
// still attach an ID extractor or observability collaborators.
func OpenFromConfig[T any](cfg config.Config, opts ...Option[T]) (Store[T], error) {
	codecName := cfg.String("codec", "json")
	codec, err := codecByName(codecName)
	if err != nil {
		return nil, err
	}

	all := append([]Option[T]{WithCodec[T](codec)}, opts...)

	path := cfg.String("path", "")
	if path == "" {
		return NewMemoryStore(all...), nil
	}
	return NewSQLiteStore(path, all...)
}

func codecByName(name string) (Codec, error) {
	switch name {
	case "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
