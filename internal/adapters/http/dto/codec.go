package dto

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// json mirrors encoding/json behavior (field tags, HTML escaping, map key
// ordering) on the faster jsoniter engine.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode writes v to w as JSON followed by a newline.
func Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// Decode reads one JSON value from r into dst. Unknown fields are rejected.
func Decode(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
