package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samdwyer/lampdelve/internal/game"
)

var unsafeSlotChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FileStore keeps each save slot in its own compressed file and writes a
// plain-text file per legacy record, all under one directory.
type FileStore struct {
	dir string
}

// OpenFileStore creates the directory if needed.
func OpenFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStore{dir: filepath.Clean(dir)}, nil
}

func (s *FileStore) savePath(slot string) string {
	return filepath.Join(s.dir, cleanSlot(slot)+".sav.gz")
}

// SaveGame writes the slot through a temporary file so a crash never
// leaves a half-written save.
func (s *FileStore) SaveGame(ctx context.Context, slot string, state *game.SaveState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(state)
	if err != nil {
		return err
	}
	path := s.savePath(slot)
	tmp, err := os.CreateTemp(s.dir, ".save-*")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// LoadGame returns ErrNotFound when the slot has never been saved.
func (s *FileStore) LoadGame(ctx context.Context, slot string) (*game.SaveState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.savePath(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read save: %w", err)
	}
	return Decode(data)
}

// DeleteGame removes the slot. Deleting an empty slot is not an error.
func (s *FileStore) DeleteGame(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.savePath(slot)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}

// RecordLegacy writes legacy_<name>_<timestamp>.txt: the banner followed
// by every message of the run.
func (s *FileStore) RecordLegacy(ctx context.Context, rec Legacy) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := fmt.Sprintf("legacy_%s_%s.txt", cleanSlot(rec.Name), rec.RecordedAt.Format("2006-01-02_15-04-05"))

	var b strings.Builder
	b.WriteString(rec.Banner() + "\n")
	for _, m := range rec.Messages {
		b.WriteString(m + "\n")
	}
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open legacy file: %w", err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write legacy file: %w", err)
	}
	return f.Close()
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }

// cleanSlot reduces a name to characters safe in a file name.
func cleanSlot(slot string) string {
	slot = unsafeSlotChars.ReplaceAllString(strings.TrimSpace(slot), "_")
	if slot == "" {
		return "default"
	}
	return slot
}
