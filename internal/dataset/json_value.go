package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONKind identifies the concrete type stored in a JSONValue.
type JSONKind int

const (
	JSONNull JSONKind = iota
	JSONString
	JSONNumber
	JSONBool
	JSONObject
	JSONArray
)

// String returns the JSON type name used in validation messages.
func (k JSONKind) String() string {
	switch k {
	case JSONNull:
		return "null"
	case JSONString:
		return "string"
	case JSONNumber:
		return "number"
	case JSONBool:
		return "bool"
	case JSONObject:
		return "object"
	case JSONArray:
		return "array"
	default:
		return "unknown"
	}
}

// JSONValue keeps a decoded JSON value together with its kind so records can
// be type-checked field by field before they are mapped onto Go structs.
type JSONValue struct {
	Kind    JSONKind
	String  string
	Number  float64
	Integer bool
	Bool    bool
	Object  map[string]JSONValue
	Array   []JSONValue
}

// UnmarshalJSON decodes a JSON value into the typed JSONValue representation.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty json value")
	}
	switch trimmed[0] {
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = JSONObject
		v.Object = make(map[string]JSONValue, len(raw))
		for key, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Object[key] = child
		}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = JSONArray
		v.Array = make([]JSONValue, 0, len(raw))
		for _, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Array = append(v.Array, child)
		}
		return nil
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONString
		v.String = value
		return nil
	case 't', 'f':
		var value bool
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONBool
		v.Bool = value
		return nil
	case 'n':
		if string(trimmed) != "null" {
			return fmt.Errorf("invalid json literal")
		}
		v.Kind = JSONNull
		return nil
	default:
		var value float64
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONNumber
		v.Number = value
		// 3 is an integer literal, 3.0 and 3e0 are not.
		v.Integer = !bytes.ContainsAny(trimmed, ".eE")
		return nil
	}
}

// Field returns the named member of an object value.
func (v JSONValue) Field(name string) (JSONValue, bool) {
	if v.Kind != JSONObject {
		return JSONValue{}, false
	}
	child, ok := v.Object[name]
	return child, ok
}

// ArrayValue returns the array slice when the value is an array.
func (v JSONValue) ArrayValue() ([]JSONValue, bool) {
	if v.Kind != JSONArray {
		return nil, false
	}
	return v.Array, true
}

// StringValue returns the string when the value is a string.
func (v JSONValue) StringValue() (string, bool) {
	if v.Kind != JSONString {
		return "", false
	}
	return v.String, true
}

// IntValue returns the number when the value is an integer literal.
func (v JSONValue) IntValue() (int, bool) {
	if v.Kind != JSONNumber || !v.Integer {
		return 0, false
	}
	return int(v.Number), true
}
