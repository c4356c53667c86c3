package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chucky-1/budgetbook/internal/model"
	"github.com/chucky-1/budgetbook/internal/repository"
	"github.com/chucky-1/budgetbook/internal/repository/mocks"
	"github.com/chucky-1/budgetbook/internal/vernam"
)

func newBook(t *testing.T) (*Book, *Auth) {
	t.Helper()
	opts := repository.Options{Dir: t.TempDir(), AtomicWrite: true}
	bookFile := repository.NewBookFile(opts)
	if err := bookFile.Initialize(); err != nil {
		t.Fatal(err)
	}
	auth := NewAuth(repository.NewPasswordFile(opts))
	return NewBook(bookFile, auth), auth
}

func sampleEntries() []model.Entry {
	return []model.Entry{
		model.NewEntry("2024-01-01", "Income", decimal.NewFromInt(1000)),
		model.NewEntry("2024-01-02", "Rent", decimal.NewFromInt(500)),
	}
}

func requireSameEntries(t *testing.T, expected, actual []model.Entry) {
	t.Helper()
	require.Equal(t, len(expected), len(actual))
	for i := range expected {
		require.Equal(t, expected[i].Date, actual[i].Date)
		require.Equal(t, expected[i].Kind, actual[i].Kind)
		require.True(t, expected[i].Amount.Equal(actual[i].Amount))
	}
}

func TestBook_SaveLoad(t *testing.T) {
	ctx := context.Background()
	b, _ := newBook(t)

	msg, err := b.SaveData(ctx, sampleEntries(), "secret")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "2 entries saved.", msg)

	entries, err := b.LoadData(ctx, "secret")
	if err != nil {
		t.Fatal(err)
	}
	requireSameEntries(t, sampleEntries(), entries)
}

func TestBook_LoadFresh(t *testing.T) {
	b, _ := newBook(t)

	entries, err := b.LoadData(context.Background(), "anything")
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, entries)
}

func TestBook_LoadWrongPassword(t *testing.T) {
	ctx := context.Background()
	b, _ := newBook(t)

	_, err := b.SaveData(ctx, sampleEntries(), "secret")
	if err != nil {
		t.Fatal(err)
	}

	_, err = b.LoadData(ctx, "not the secret")
	require.True(t, errors.Is(err, repository.ErrDecode) || errors.Is(err, repository.ErrParse), "unexpected error: %v", err)
}

func TestBook_SaveRejectedWhenPasswordDoesNotMatch(t *testing.T) {
	ctx := context.Background()
	b, auth := newBook(t)

	_, err := auth.SetPassword(ctx, "secret")
	if err != nil {
		t.Fatal(err)
	}
	_, err = b.SaveData(ctx, sampleEntries(), "secret")
	if err != nil {
		t.Fatal(err)
	}

	_, err = b.SaveData(ctx, []model.Entry{}, "guess")
	require.ErrorIs(t, err, ErrWrongPassword)

	entries, err := b.LoadData(ctx, "secret")
	if err != nil {
		t.Fatal(err)
	}
	requireSameEntries(t, sampleEntries(), entries)
}

func TestBook_ChartData(t *testing.T) {
	ctx := context.Background()
	b, _ := newBook(t)

	_, err := b.SaveData(ctx, sampleEntries(), "secret")
	if err != nil {
		t.Fatal(err)
	}

	chart, err := b.ChartData(ctx, "secret")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []model.ChartPoint{{Date: "2024-01-01", Amount: 1000.0}}, chart.Income)
	require.Equal(t, []model.ChartPoint{{Date: "2024-01-02", Amount: 500.0}}, chart.Expense)
}

func TestBook_ChartDataLoadError(t *testing.T) {
	bookRepo := mocks.NewBook(t)
	bookRepo.On("Load", mock.Anything, vernam.Key("secret")).Return(nil, repository.ErrDecode)

	_, err := NewBook(bookRepo, NewAuth(mocks.NewPasswords(t))).ChartData(context.Background(), "secret")
	require.ErrorIs(t, err, repository.ErrDecode)
}

func TestBook_AddEntry(t *testing.T) {
	ctx := context.Background()
	b, _ := newBook(t)

	for i, entry := range sampleEntries() {
		_, err := b.AddEntry(ctx, entry, "secret")
		if err != nil {
			t.Fatalf("entry %d: %v", i, err)
		}
	}

	entries, err := b.LoadData(ctx, "secret")
	if err != nil {
		t.Fatal(err)
	}
	requireSameEntries(t, sampleEntries(), entries)
}

func TestBook_AddEntryNegativeAmount(t *testing.T) {
	bookRepo := mocks.NewBook(t)

	_, err := NewBook(bookRepo, NewAuth(mocks.NewPasswords(t))).
		AddEntry(context.Background(), model.NewEntry("2024-01-01", "Rent", decimal.NewFromInt(-1)), "secret")
	require.ErrorIs(t, err, model.ErrNegativeAmount)
}

func TestBook_AddEntryMissingFile(t *testing.T) {
	bookRepo := mocks.NewBook(t)
	passwordRepo := mocks.NewPasswords(t)
	entry := model.NewEntry("2024-01-01", "Income", decimal.NewFromInt(1))
	passwordRepo.On("Exists", mock.Anything).Return(false)
	bookRepo.On("Load", mock.Anything, vernam.Key("secret")).Return(nil, repository.ErrNoData)
	bookRepo.On("Save", mock.Anything, []model.Entry{entry}, vernam.Key("secret")).Return(nil)

	msg, err := NewBook(bookRepo, NewAuth(passwordRepo)).AddEntry(context.Background(), entry, "secret")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Entry added, 1 entries saved.", msg)
}

func TestBook_ChangePassword(t *testing.T) {
	ctx := context.Background()
	b, auth := newBook(t)

	_, err := auth.SetPassword(ctx, "old")
	if err != nil {
		t.Fatal(err)
	}
	_, err = b.SaveData(ctx, sampleEntries(), "old")
	if err != nil {
		t.Fatal(err)
	}

	_, err = b.ChangePassword(ctx, "old", "new")
	if err != nil {
		t.Fatal(err)
	}

	ok, err := auth.VerifyPassword(ctx, "new")
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, ok)

	entries, err := b.LoadData(ctx, "new")
	if err != nil {
		t.Fatal(err)
	}
	requireSameEntries(t, sampleEntries(), entries)

	_, err = b.LoadData(ctx, "old")
	require.Error(t, err)
}

func TestBook_ChangePasswordWrongOld(t *testing.T) {
	ctx := context.Background()
	b, auth := newBook(t)

	_, err := auth.SetPassword(ctx, "old")
	if err != nil {
		t.Fatal(err)
	}

	_, err = b.ChangePassword(ctx, "guess", "new")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestBook_ChangePasswordRollback(t *testing.T) {
	ctx := context.Background()
	writeErr := errors.New("read-only file system")
	bookRepo := mocks.NewBook(t)
	passwordRepo := mocks.NewPasswords(t)
	entries := sampleEntries()

	passwordRepo.On("Exists", mock.Anything).Return(false)
	passwordRepo.On("Write", mock.Anything, vernam.Key("new")).Return(writeErr)
	bookRepo.On("Load", mock.Anything, vernam.Key("old")).Return(entries, nil)
	bookRepo.On("Save", mock.Anything, entries, vernam.Key("new")).Return(nil).Once()
	bookRepo.On("Save", mock.Anything, entries, vernam.Key("old")).Return(nil).Once()

	_, err := NewBook(bookRepo, NewAuth(passwordRepo)).ChangePassword(ctx, "old", "new")
	require.ErrorIs(t, err, writeErr)
}
