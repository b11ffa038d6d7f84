package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedInput = errors.New("malformed input payload")

// DecodeInput parses a JSON payload and rejects it when a required field is
// missing or has the wrong type. Keys are matched exactly; unknown ones,
// including case variants of the required keys, are ignored.
func DecodeInput(data []byte) (InputPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return InputPayload{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	var payload InputPayload
	if err := decodeField(fields, "BaseUrl", &payload.BaseUrl); err != nil {
		return InputPayload{}, err
	}
	if err := decodeField(fields, "LambdaConcur", &payload.LambdaConcur); err != nil {
		return InputPayload{}, err
	}

	var paths []*string
	if err := decodeField(fields, "ResourcePaths", &paths); err != nil {
		return InputPayload{}, err
	}

	payload.ResourcePaths = make([]string, len(paths))
	for i, path := range paths {
		if path == nil {
			return InputPayload{}, fmt.Errorf("%w: ResourcePaths[%d] is null", ErrMalformedInput, i)
		}
		payload.ResourcePaths[i] = *path
	}

	return payload, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w: %s is required", ErrMalformedInput, key)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedInput, key, err)
	}
	return nil
}

func (p InputPayload) Validate() error {
	if p.ResourcePaths == nil {
		return fmt.Errorf("%w: ResourcePaths is required", ErrMalformedInput)
	}
	return nil
}
