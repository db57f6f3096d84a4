package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrInvalidBundle = errors.New("invalid response bundle")
)

// ResponseBundleRequest carries the extras of a RESPONSE_CODE broadcast.
//
// Clients may post the extras object directly, or wrapped as
// {"extras": {...}}. Numbers are kept as json.Number so large request ids
// survive decoding.

type ResponseBundleRequest struct {
	Extras map[string]any `json:"extras"`
}

func ParseResponseBundle(raw []byte) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, ErrInvalidBundle
	}
	if dec.More() {
		return nil, ErrInvalidBundle
	}
	if body == nil {
		return nil, ErrInvalidBundle
	}

	if wrapped, ok := body["extras"]; ok {
		extras, ok := wrapped.(map[string]any)
		if !ok {
			return nil, ErrInvalidBundle
		}
		return extras, nil
	}
	return body, nil
}
