package entity

import (
	"fmt"
	"strings"
)

// marshalEnum renders a tagged value by name.
func marshalEnum[T comparable](v T, names map[T]string) ([]byte, error) {
	name, ok := names[v]
	if !ok {
		return nil, fmt.Errorf("unknown %T value %v", v, v)
	}
	return []byte(name), nil
}

// unmarshalEnum resolves a name back to its tagged value.
func unmarshalEnum[T comparable](text []byte, names map[T]string) (T, error) {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for v, name := range names {
		if name == want {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %T name %q", zero, string(text))
}

func enumString[T comparable](v T, names map[T]string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return "unknown"
}
