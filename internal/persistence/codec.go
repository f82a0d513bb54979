package persistence

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/samdwyer/lampdelve/internal/game"
)

// Encode serializes a save state as gzip-compressed JSON.
func Encode(state *game.SaveState) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := json.NewEncoder(zw).Encode(state); err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress save: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode.
func Decode(data []byte) (*game.SaveState, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open compressed save: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress save: %w", err)
	}
	var state game.SaveState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	return &state, nil
}
