package where

import (
	"encoding/base64"
	"encoding/json"

	"github.com/mwhitford/criterion/pkg/criterion"
)

// ValidJSON matches entities whose string field holds syntactically
// valid JSON. Well-formedness checks have no description form, so the
// leaf is opaque: it evaluates everywhere in memory and reports a
// TranslationError if translated.
func ValidJSON[T any](f criterion.Field[T, string]) criterion.Predicate[T] {
	get := accessor(f)
	return criterion.Func(func(e T) bool { return json.Valid([]byte(get(e))) })
}

// ValidBase64 matches entities whose string field decodes as standard
// base64. Like ValidJSON, the leaf is opaque.
func ValidBase64[T any](f criterion.Field[T, string]) criterion.Predicate[T] {
	get := accessor(f)
	return criterion.Func(func(e T) bool {
		_, err := base64.StdEncoding.DecodeString(get(e))
		return err == nil
	})
}
