package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseResponseBundle(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		got, err := ParseResponseBundle([]byte("  "))
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty bundle, got %v err=%v", got, err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseResponseBundle([]byte("{"))
		if !errors.Is(err, ErrInvalidBundle) {
			t.Fatalf("expected ErrInvalidBundle, got %v", err)
		}
	})

	t.Run("not an object", func(t *testing.T) {
		for _, body := range []string{`[1,2]`, `null`, `{"a":1} {"b":2}`} {
			if _, err := ParseResponseBundle([]byte(body)); !errors.Is(err, ErrInvalidBundle) {
				t.Fatalf("body %s: expected ErrInvalidBundle, got %v", body, err)
			}
		}
	})

	t.Run("flat extras", func(t *testing.T) {
		got, err := ParseResponseBundle([]byte(`{"request_id": 9007199254740993, "response_code": 0}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["request_id"] != json.Number("9007199254740993") {
			t.Fatalf("expected exact request id, got %v", got["request_id"])
		}
	})

	t.Run("wrapped extras", func(t *testing.T) {
		got, err := ParseResponseBundle([]byte(`{"extras": {"response_code": 4}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["response_code"] != json.Number("4") {
			t.Fatalf("unexpected extras: %v", got)
		}
	})

	t.Run("wrapped extras must be an object", func(t *testing.T) {
		_, err := ParseResponseBundle([]byte(`{"extras": "x"}`))
		if !errors.Is(err, ErrInvalidBundle) {
			t.Fatalf("expected ErrInvalidBundle, got %v", err)
		}
	})
}
