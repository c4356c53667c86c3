package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const IncomeKind = "income"

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrMalformedEntry = errors.New("malformed entry")
)

// Entry is one record of expenses or income
type Entry struct {
	Date   string          `json:"date"`
	Kind   string          `json:"type"` // income or anything else (expense)
	Amount decimal.Decimal `json:"amount"`
}

func NewEntry(date, kind string, amount decimal.Decimal) Entry {
	return Entry{
		Date:   date,
		Kind:   kind,
		Amount: amount,
	}
}

// IsIncome compares the kind with "income" ignoring case.
func (e Entry) IsIncome() bool {
	return strings.EqualFold(e.Kind, IncomeKind)
}

func (e Entry) Validate() error {
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, e.Amount)
	}
	return nil
}

// UnmarshalJSON requires all three fields: date and type as JSON strings,
// amount as a bare JSON number. Unknown fields are ignored.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date   json.RawMessage `json:"date"`
		Kind   json.RawMessage `json:"type"`
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := stringField("date", raw.Date)
	if err != nil {
		return err
	}
	kind, err := stringField("type", raw.Kind)
	if err != nil {
		return err
	}
	amount, err := numberField("amount", raw.Amount)
	if err != nil {
		return err
	}

	*e = NewEntry(date, kind, amount)
	return nil
}

func stringField(name string, raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: missing %q", ErrMalformedEntry, name)
	}
	if raw[0] != '"' {
		return "", fmt.Errorf("%w: %q must be a string, got %s", ErrMalformedEntry, name, raw)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrMalformedEntry, name, err)
	}
	return value, nil
}

func numberField(name string, raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Zero, fmt.Errorf("%w: missing %q", ErrMalformedEntry, name)
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return decimal.Zero, fmt.Errorf("%w: %q must be a number, got %s", ErrMalformedEntry, name, raw)
	}
	value, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %w", ErrMalformedEntry, name, err)
	}
	return value, nil
}
