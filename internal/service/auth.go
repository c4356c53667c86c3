package service

import (
	"context"
	"crypto/subtle"

	"github.com/chucky-1/budgetbook/internal/repository"
	"github.com/chucky-1/budgetbook/internal/vernam"
)

type Authorization interface {
	IsPasswordSet(ctx context.Context) bool
	SetPassword(ctx context.Context, password string) (string, error)
	VerifyPassword(ctx context.Context, password string) (bool, error)
}

// Auth is the password gate. It only stores and compares digests,
// it never touches the budget data.
type Auth struct {
	repo repository.Passwords
}

func NewAuth(repo repository.Passwords) *Auth {
	return &Auth{
		repo: repo,
	}
}

func (a *Auth) IsPasswordSet(ctx context.Context) bool {
	return a.repo.Exists(ctx)
}

func (a *Auth) SetPassword(ctx context.Context, password string) (string, error) {
	if err := a.repo.Write(ctx, a.generatePassword(password)); err != nil {
		return "", err
	}
	return "Password has been set.", nil
}

// VerifyPassword fails with repository.ErrNoPassword when no password was ever set.
func (a *Auth) VerifyPassword(ctx context.Context, password string) (bool, error) {
	stored, err := a.repo.Read(ctx)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(stored, a.generatePassword(password)) == 1, nil
}

// generatePassword returns the digest that is both stored and used as the data key.
func (a *Auth) generatePassword(password string) []byte {
	return vernam.Key(password)
}
