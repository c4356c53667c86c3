package repository

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/chucky-1/budgetbook/internal/model"
)

const (
	DefaultDataFile     = "budget_book_data.bin"
	DefaultPasswordFile = "password.hash"
)

var (
	ErrDirectory  = errors.New("couldn't create data directory")
	ErrWrite      = errors.New("couldn't write file")
	ErrRead       = errors.New("couldn't read file")
	ErrSerialize  = errors.New("couldn't serialize entries")
	ErrDecode     = errors.New("couldn't decode data, wrong password or corrupted file")
	ErrParse      = errors.New("couldn't parse entries")
	ErrNoData     = errors.New("data file doesn't exist")
	ErrNoPassword = errors.New("password is not set")
)

//go:generate mockery --name=Book

// Book persists the whole list of entries under a key.
type Book interface {
	Save(ctx context.Context, entries []model.Entry, key []byte) error
	Load(ctx context.Context, key []byte) ([]model.Entry, error)
}

//go:generate mockery --name=Passwords

// Passwords keeps the digest of the single application password.
type Passwords interface {
	Exists(ctx context.Context) bool
	Write(ctx context.Context, digest []byte) error
	Read(ctx context.Context) ([]byte, error)
}

// Options locates the files on disk. Both files live in Dir.
type Options struct {
	Dir          string
	DataFile     string
	PasswordFile string
	AtomicWrite  bool // write to a temporary file and rename it over the target
}

func (o Options) DataPath() string {
	name := o.DataFile
	if name == "" {
		name = DefaultDataFile
	}
	return filepath.Join(o.Dir, name)
}

func (o Options) PasswordPath() string {
	name := o.PasswordFile
	if name == "" {
		name = DefaultPasswordFile
	}
	return filepath.Join(o.Dir, name)
}
