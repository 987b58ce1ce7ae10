package structured

import "encoding/json"

// Kind discriminates the closed set of JSON shapes a structured-data field
// can take.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// Value is a tagged variant over a decoded JSON value. Structured-data
// producers are wildly inconsistent about field shapes (string vs object vs
// array), so every field read goes through this type instead of ad-hoc type
// assertions.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
	Arr  []Value
	Obj  map[string]Value
}

// UnmarshalJSON decodes arbitrary JSON into the variant.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*v = fromInterface(raw)
	return nil
}

func fromInterface(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Value{Kind: KindNull}
	case string:
		return Value{Kind: KindString, Str: t}
	case float64:
		return Value{Kind: KindNumber, Num: t}
	case bool:
		return Value{Kind: KindBool, Bool: t}
	case []interface{}:
		arr := make([]Value, 0, len(t))
		for _, e := range t {
			arr = append(arr, fromInterface(e))
		}
		return Value{Kind: KindArray, Arr: arr}
	case map[string]interface{}:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			obj[k] = fromInterface(e)
		}
		return Value{Kind: KindObject, Obj: obj}
	default:
		return Value{Kind: KindNull}
	}
}

// Field returns the named field of an object Value.
func (v Value) Field(name string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	f, ok := v.Obj[name]
	return f, ok
}

// StringField returns the named field when it is a plain string.
func (v Value) StringField(name string) string {
	if f, ok := v.Field(name); ok && f.Kind == KindString {
		return f.Str
	}
	return ""
}

// firstText extracts the first present of the given fields as text. Used for
// the object shape of tag-like and step fields, where producers variously use
// "text", "name", or "@value".
func firstText(v Value, fields ...string) string {
	for _, name := range fields {
		if f, ok := v.Field(name); ok && f.Kind == KindString && f.Str != "" {
			return f.Str
		}
	}
	return ""
}
