package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

// PasswordFile keeps the raw password digest in a single file.
type PasswordFile struct {
	path   string
	atomic bool
}

func NewPasswordFile(opts Options) *PasswordFile {
	return &PasswordFile{
		path:   opts.PasswordPath(),
		atomic: opts.AtomicWrite,
	}
}

// Exists reports whether the file is there. Any stat failure counts as absent.
func (p *PasswordFile) Exists(_ context.Context) bool {
	_, err := os.Stat(p.path)
	return err == nil
}

func (p *PasswordFile) Write(ctx context.Context, digest []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFile(p.path, digest, p.atomic); err != nil {
		return fmt.Errorf("%w: repository.PasswordFile.Write %s: %w", ErrWrite, p.path, err)
	}
	logrus.Infof("stored password hash in %s", p.path)
	return nil
}

func (p *PasswordFile) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	digest, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s doesn't exist", ErrNoPassword, p.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: repository.PasswordFile.Read %s: %w", ErrRead, p.path, err)
	}
	return digest, nil
}
