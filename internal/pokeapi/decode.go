package pokeapi

import (
	"encoding/json"
	"fmt"
	"math"
)

// DecodeError describes the first structural or type mismatch found while
// decoding an API response.
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Path, e.Reason)
}

func decodeErrf(path, format string, args ...any) *DecodeError {
	return &DecodeError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// DecodeListResponse decodes a catalog response. Every element of the
// results array must decode; the first failing element rejects the whole
// list.
func DecodeListResponse(data []byte, ids *ResourceParser) ([]ListItem, error) {
	root, err := rootObject(data)
	if err != nil {
		return nil, err
	}

	elems, err := arrayField(root, "$", "results")
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(elems))
	for i, el := range elems {
		item, err := decodeListItem(el, fmt.Sprintf("$.results[%d]", i), ids)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeListItem(v any, path string, ids *ResourceParser) (ListItem, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return ListItem{}, decodeErrf(path, "expected an object, got %T", v)
	}

	name, err := stringField(obj, path, "name")
	if err != nil {
		return ListItem{}, err
	}

	rawURL, err := stringField(obj, path, "url")
	if err != nil {
		return ListItem{}, err
	}

	id, err := ids.ExtractID(rawURL)
	if err != nil {
		return ListItem{}, decodeErrf(path+".url", "%v", err)
	}

	return ListItem{ID: id, Name: name}, nil
}

// DecodeDetail decodes a detail response. Unknown fields are permitted and
// survive verbatim in Raw.
func DecodeDetail(data []byte) (DetailRecord, error) {
	root, err := rootObject(data)
	if err != nil {
		return DetailRecord{}, err
	}

	id, err := intField(root, "$", "id")
	if err != nil {
		return DetailRecord{}, err
	}
	if id < 1 {
		return DetailRecord{}, decodeErrf("$.id", "must be positive, got %d", id)
	}

	name, err := stringField(root, "$", "name")
	if err != nil {
		return DetailRecord{}, err
	}

	baseExp, err := intField(root, "$", "base_experience")
	if err != nil {
		return DetailRecord{}, err
	}
	if baseExp < 0 {
		return DetailRecord{}, decodeErrf("$.base_experience", "must not be negative, got %d", baseExp)
	}

	typeElems, err := arrayField(root, "$", "types")
	if err != nil {
		return DetailRecord{}, err
	}

	types := make([]string, 0, len(typeElems))
	for i, el := range typeElems {
		path := fmt.Sprintf("$.types[%d]", i)
		entry, ok := el.(map[string]any)
		if !ok {
			return DetailRecord{}, decodeErrf(path, "expected an object, got %T", el)
		}
		inner, err := objectField(entry, path, "type")
		if err != nil {
			return DetailRecord{}, err
		}
		typeName, err := stringField(inner, path+".type", "name")
		if err != nil {
			return DetailRecord{}, err
		}
		types = append(types, typeName)
	}

	raw := make(json.RawMessage, len(data))
	copy(raw, data)

	return DetailRecord{
		ID:             id,
		Name:           name,
		BaseExperience: baseExp,
		Types:          types,
		Raw:            raw,
	}, nil
}

func rootObject(data []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, decodeErrf("$", "invalid json: %v", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, decodeErrf("$", "expected an object, got %T", v)
	}
	return obj, nil
}

func stringField(obj map[string]any, path, name string) (string, error) {
	v, ok := obj[name]
	if !ok {
		return "", decodeErrf(path+"."+name, "field is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", decodeErrf(path+"."+name, "expected a string, got %T", v)
	}
	if s == "" {
		return "", decodeErrf(path+"."+name, "must not be empty")
	}
	return s, nil
}

func intField(obj map[string]any, path, name string) (int, error) {
	v, ok := obj[name]
	if !ok {
		return 0, decodeErrf(path+"."+name, "field is missing")
	}
	f, ok := v.(float64)
	if !ok {
		return 0, decodeErrf(path+"."+name, "expected an integer, got %T", v)
	}
	if f != math.Trunc(f) {
		return 0, decodeErrf(path+"."+name, "expected an integer, got %v", f)
	}
	return int(f), nil
}

func arrayField(obj map[string]any, path, name string) ([]any, error) {
	v, ok := obj[name]
	if !ok {
		return nil, decodeErrf(path+"."+name, "field is missing")
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, decodeErrf(path+"."+name, "expected an array, got %T", v)
	}
	return arr, nil
}

func objectField(obj map[string]any, path, name string) (map[string]any, error) {
	v, ok := obj[name]
	if !ok {
		return nil, decodeErrf(path+"."+name, "field is missing")
	}
	inner, ok := v.(map[string]any)
	if !ok {
		return nil, decodeErrf(path+"."+name, "expected an object, got %T", v)
	}
	return inner, nil
}
