package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/budgetbook/internal/model"
	"github.com/chucky-1/budgetbook/internal/repository"
	"github.com/chucky-1/budgetbook/internal/vernam"
)

var ErrWrongPassword = errors.New("wrong password")

type Finance interface {
	SaveData(ctx context.Context, entries []model.Entry, password string) (string, error)
	LoadData(ctx context.Context, password string) ([]model.Entry, error)
	ChartData(ctx context.Context, password string) (model.ChartData, error)
	AddEntry(ctx context.Context, entry model.Entry, password string) (string, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error)
}

// Book keys the record store with the password digest.
type Book struct {
	repo repository.Book
	auth Authorization
}

func NewBook(repo repository.Book, auth Authorization) *Book {
	return &Book{
		repo: repo,
		auth: auth,
	}
}

// SaveData replaces the stored entries. When a password is set, a password that
// doesn't match it is rejected before anything is written.
func (b *Book) SaveData(ctx context.Context, entries []model.Entry, password string) (string, error) {
	if err := b.checkPassword(ctx, password); err != nil {
		return "", err
	}
	if err := b.repo.Save(ctx, entries, vernam.Key(password)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d entries saved.", len(entries)), nil
}

// LoadData does not consult the password gate: a wrong password shows up
// as repository.ErrDecode or repository.ErrParse.
func (b *Book) LoadData(ctx context.Context, password string) ([]model.Entry, error) {
	return b.repo.Load(ctx, vernam.Key(password))
}

func (b *Book) ChartData(ctx context.Context, password string) (model.ChartData, error) {
	entries, err := b.LoadData(ctx, password)
	if err != nil {
		return model.ChartData{}, err
	}
	return Chart(entries), nil
}

func (b *Book) AddEntry(ctx context.Context, entry model.Entry, password string) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}
	if err := b.checkPassword(ctx, password); err != nil {
		return "", err
	}
	entries, err := b.loadOrEmpty(ctx, password)
	if err != nil {
		return "", err
	}
	entries = append(entries, entry)
	if err = b.repo.Save(ctx, entries, vernam.Key(password)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Entry added, %d entries saved.", len(entries)), nil
}

// ChangePassword re-encrypts the book with the new password and then stores its digest.
// If storing the digest fails the book is written back with the old password.
func (b *Book) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	if err := b.checkPassword(ctx, oldPassword); err != nil {
		return "", err
	}
	entries, err := b.loadOrEmpty(ctx, oldPassword)
	if err != nil {
		return "", err
	}
	if err = b.repo.Save(ctx, entries, vernam.Key(newPassword)); err != nil {
		return "", err
	}
	if _, err = b.auth.SetPassword(ctx, newPassword); err != nil {
		if rollbackErr := b.repo.Save(ctx, entries, vernam.Key(oldPassword)); rollbackErr != nil {
			logrus.Errorf("service.Book.ChangePassword couldn't restore data with the old password: %v", rollbackErr)
		}
		return "", err
	}
	logrus.Infof("password changed, %d entries re-encrypted", len(entries))
	return fmt.Sprintf("Password changed, %d entries re-encrypted.", len(entries)), nil
}

func (b *Book) checkPassword(ctx context.Context, password string) error {
	if !b.auth.IsPasswordSet(ctx) {
		return nil
	}
	ok, err := b.auth.VerifyPassword(ctx, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}
	return nil
}

// loadOrEmpty treats a missing data file as an empty book.
func (b *Book) loadOrEmpty(ctx context.Context, password string) ([]model.Entry, error) {
	entries, err := b.repo.Load(ctx, vernam.Key(password))
	if errors.Is(err, repository.ErrNoData) {
		return []model.Entry{}, nil
	}
	return entries, err
}
