package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/andrewmackie/graph-explorer-api/utils"
)

// body is a decoded JSON object that retains per-field presence, so PUT can
// distinguish an omitted field from one explicitly set to null.
type body map[string]json.RawMessage

func decodeBody(r *http.Request) (body, error) {
	if r.Body == nil {
		return body{}, nil
	}
	var b body
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		if err == io.EOF {
			return body{}, nil
		}
		return nil, err
	}
	if b == nil {
		b = body{}
	}
	return b, nil
}

// has reports whether the field appeared in the request at all.
func (b body) has(key string) bool {
	_, ok := b[key]
	return ok
}

// text returns the sanitized value of a free-text field. Missing, null,
// non-string and cleaned-to-empty values all come back as nil.
func (b body) text(key string) *string {
	raw, ok := b[key]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return utils.CleanOptional(s)
}

// integer returns the field as an id and whether it was present and integral.
// JSON floats and strings do not qualify.
func (b body) integer(key string) (uint, bool) {
	raw, ok := b[key]
	if !ok || len(raw) == 0 {
		return 0, false
	}
	// json.Number also unmarshals quoted numerals like "1"; only bare number
	// literals count as integers here
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	v, err := n.Int64()
	if err != nil || v < 0 {
		return 0, false
	}
	return uint(v), true
}
