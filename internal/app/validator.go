// internal/app/validator.go
package app

import (
	"encoding/json"
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

// ExtractHomeworks checks the top-level shape of an API response and returns the
// homeworks list unchanged. An empty list is valid and means nothing changed.
func ExtractHomeworks(raw any) ([]any, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &homework.SchemaError{Reason: fmt.Sprintf("response is %s, not an object", jsonKind(raw))}
	}

	value, ok := obj["homeworks"]
	if !ok {
		return nil, &homework.SchemaError{Reason: `key "homeworks" is missing`}
	}

	works, ok := value.([]any)
	if !ok {
		return nil, &homework.SchemaError{Reason: fmt.Sprintf(`"homeworks" is %s, not a list`, jsonKind(value))}
	}
	return works, nil
}

// ParseHomework validates a single homeworks entry.
func ParseHomework(record any) (homework.Homework, error) {
	obj, ok := record.(map[string]any)
	if !ok {
		return homework.Homework{}, &homework.SchemaError{Reason: fmt.Sprintf("homework entry is %s, not an object", jsonKind(record))}
	}

	name, err := stringField(obj, "homework_name")
	if err != nil {
		return homework.Homework{}, err
	}
	status, err := stringField(obj, "status")
	if err != nil {
		return homework.Homework{}, err
	}

	if _, known := homework.Verdict(homework.Status(status)); !known {
		return homework.Homework{}, &homework.UnknownStatusError{Status: status}
	}
	return homework.Homework{Name: name, Status: homework.Status(status)}, nil
}

// ParseStatus returns the status-change message for a homeworks entry.
func ParseStatus(record any) (string, error) {
	hw, err := ParseHomework(record)
	if err != nil {
		return "", err
	}
	return hw.Message(), nil
}

// CurrentDate reads the optional server timestamp from a response.
// The second result is false when the field is absent or not an integer.
func CurrentDate(raw any) (int64, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := obj["current_date"].(type) {
	case json.Number:
		ts, err := v.Int64()
		return ts, err == nil
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}

func stringField(obj map[string]any, key string) (string, error) {
	value, ok := obj[key]
	if !ok {
		return "", &homework.SchemaError{Reason: fmt.Sprintf("key %q is missing in homework entry", key)}
	}
	s, ok := value.(string)
	if !ok {
		return "", &homework.SchemaError{Reason: fmt.Sprintf("key %q is %s, not a string", key, jsonKind(value))}
	}
	return s, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
