package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/budgetbook/internal/model"
	"github.com/chucky-1/budgetbook/internal/vernam"
)

// BookFile stores the entries as pretty printed JSON, XOR-ed with the key.
// It is the only owner of the data file.
type BookFile struct {
	path   string
	atomic bool
}

func NewBookFile(opts Options) *BookFile {
	return &BookFile{
		path:   opts.DataPath(),
		atomic: opts.AtomicWrite,
	}
}

func (b *BookFile) Path() string {
	return b.path
}

// Initialize creates the data directory and an empty data file if there is none.
// An empty file loads as no entries whatever the key is.
func (b *BookFile) Initialize() error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirectory, dir, err)
	}

	_, err := os.Stat(b.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: repository.BookFile.Initialize stat %s: %w", ErrRead, b.path, err)
	}
	if err = writeFile(b.path, nil, b.atomic); err != nil {
		return fmt.Errorf("%w: repository.BookFile.Initialize %s: %w", ErrWrite, b.path, err)
	}
	logrus.Infof("created empty data file %s", b.path)
	return nil
}

func (b *BookFile) Save(ctx context.Context, entries []model.Entry, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err = writeFile(b.path, vernam.XOR(data, key), b.atomic); err != nil {
		return fmt.Errorf("%w: repository.BookFile.Save %s: %w", ErrWrite, b.path, err)
	}
	logrus.Infof("saved %d entries to %s", len(entries), b.path)
	return nil
}

func (b *BookFile) Load(ctx context.Context, key []byte) ([]model.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoData, b.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: repository.BookFile.Load %s: %w", ErrRead, b.path, err)
	}
	if len(data) == 0 {
		return []model.Entry{}, nil
	}

	plain := vernam.XOR(data, key)
	if !utf8.Valid(plain) {
		return nil, fmt.Errorf("%w: %s is not valid text after decryption", ErrDecode, b.path)
	}
	entries, err := decodeEntries(plain)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("loaded %d entries from %s", len(entries), b.path)
	return entries, nil
}

// encodeEntries returns the canonical form: a 2-space indented JSON array,
// fields in declaration order. It is deterministic for the same entries.
func encodeEntries(entries []model.Entry) ([]byte, error) {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrSerialize, i, err)
		}
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return data, nil
}

func decodeEntries(data []byte) ([]model.Entry, error) {
	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	// an empty array decodes to a non-nil slice, only null leaves it nil
	if entries == nil {
		return nil, fmt.Errorf("%w: expected an array of entries, got null", ErrParse)
	}
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrParse, i, err)
		}
	}
	return entries, nil
}
