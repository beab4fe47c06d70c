package jsonconf

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// decode parses a JSON document into a cty value of its implied type.
func decode(src []byte) (cty.Value, error) {
	ty, err := ctyjson.ImpliedType(src)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to parse JSON: %w", err)
	}
	val, err := ctyjson.Unmarshal(src, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return val, nil
}

// object returns the attributes of a JSON object value.
func object(v cty.Value, where string) (map[string]cty.Value, error) {
	if v.IsNull() || !(v.Type().IsObjectType() || v.Type().IsMapType()) {
		return nil, fmt.Errorf("%s: expected an object, got %s", where, friendly(v))
	}
	m := v.AsValueMap()
	if m == nil {
		m = map[string]cty.Value{}
	}
	return m, nil
}

// checkKeys rejects any attribute that is not listed in allowed.
func checkKeys(attrs map[string]cty.Value, where string, allowed ...string) error {
	for _, k := range sortedKeys(attrs) {
		known := false
		for _, a := range allowed {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%s: unknown key %q", where, k)
		}
	}
	return nil
}

// strictString accepts only a JSON string.
func strictString(v cty.Value, where string) (string, error) {
	if v.IsNull() || !v.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s: expected a string, got %s", where, friendly(v))
	}
	return v.AsString(), nil
}

// strictStrings accepts only an array of JSON strings.
func strictStrings(v cty.Value, where string) ([]string, error) {
	if v.IsNull() || !(v.Type().IsTupleType() || v.Type().IsListType()) {
		return nil, fmt.Errorf("%s: expected a list of strings, got %s", where, friendly(v))
	}
	var out []string
	for i, elem := range v.AsValueSlice() {
		s, err := strictString(elem, fmt.Sprintf("%s[%d]", where, i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// looseString converts numbers and bools to strings. A null value yields "".
func looseString(v cty.Value, where string) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	conv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("%s: cannot use %s as a string: %w", where, friendly(v), err)
	}
	return conv.AsString(), nil
}

// looseStrings accepts a single scalar or an array of scalars.
func looseStrings(v cty.Value, where string) ([]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if v.Type().IsPrimitiveType() {
		s, err := looseString(v, where)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
	conv, err := convert.Convert(v, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("%s: cannot use %s as a list of strings: %w", where, friendly(v), err)
	}
	var out []string
	for _, elem := range conv.AsValueSlice() {
		if elem.IsNull() {
			continue
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}

func friendly(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	return v.Type().FriendlyName()
}

func sortedKeys(m map[string]cty.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
