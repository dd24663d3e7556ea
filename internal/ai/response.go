package ai

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// requiredField extracts a top-level string field. A missing, blank or
// non-string value is ErrInvalidResponse.
func requiredField(body []byte, field string) (string, error) {
	result, err := lookup(body, field)
	if err != nil {
		return "", err
	}
	if result.Type != gjson.String {
		return "", fmt.Errorf("%w: %q is missing or not a string", ErrInvalidResponse, field)
	}

	value := strings.TrimSpace(result.Str)
	if value == "" {
		return "", fmt.Errorf("%w: %q is empty", ErrInvalidResponse, field)
	}
	return value, nil
}

// optionalField extracts a top-level string field; a missing or non-string
// value is "".
func optionalField(body []byte, field string) (string, error) {
	result, err := lookup(body, field)
	if err != nil {
		return "", err
	}
	if result.Type != gjson.String {
		return "", nil
	}
	return strings.TrimSpace(result.Str), nil
}

func lookup(body []byte, field string) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: body is not JSON", ErrInvalidResponse)
	}
	return gjson.GetBytes(body, field), nil
}
