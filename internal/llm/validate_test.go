package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "validate-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer"},
			},
			"required":             []any{"title", "count"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"title": "hello", "count": 3}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatal(err)
	}
}

func TestValidateResponseMissingField(t *testing.T) {
	raw := json.RawMessage(`{"title": "hello"}`)
	err := validateResponse(testSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"title": "hello", "count": "three"}`)
	err := validateResponse(testSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"title": `)
	err := validateResponse(testSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNoSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseCachedCompile(t *testing.T) {
	// The cache makes repeated compilation cheap; this just asserts the
	// second lookup hits the same compiled schema.
	raw := json.RawMessage(`{"title": "a", "count": 1}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatal(err)
	}
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatal(err)
	}
}
