// Package cli implements the budgetbook command line shell on top of the services.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/chucky-1/budgetbook/internal/service"
)

var ErrNoTerminal = errors.New("stdin is not a terminal, pass the password with -password")

// App holds what every command needs. Out gets command results, Err gets messages for the user.
type App struct {
	Auth     service.Authorization
	Book     service.Finance
	Currency string

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// ReadPassword asks the user for a password without echoing it.
	ReadPassword func(prompt string) (string, error)
}

// Register the subcommands.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&statusCmd{app: app}, "password")
	c.Register(&setPasswordCmd{app: app}, "password")
	c.Register(&verifyPasswordCmd{app: app}, "password")
	c.Register(&changePasswordCmd{app: app}, "password")

	c.Register(&saveCmd{app: app}, "book")
	c.Register(&listCmd{app: app}, "book")
	c.Register(&addCmd{app: app}, "book")
	c.Register(&chartCmd{app: app}, "book")
}

// TerminalPassword reads a password from the controlling terminal.
func TerminalPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("cli, read password error: %w", err)
	}
	return string(password), nil
}

// passwordFlag remembers whether it was given, so that an explicit empty password
// is different from no password at all.
type passwordFlag struct {
	value string
	set   bool
}

var _ flag.Value = (*passwordFlag)(nil)

func (p *passwordFlag) String() string { return "" }

func (p *passwordFlag) Set(v string) error {
	p.value = v
	p.set = true
	return nil
}

func (a *App) fail(format string, args ...interface{}) subcommands.ExitStatus {
	msg := fmt.Sprintf(format, args...)
	logrus.Debug(msg)
	fmt.Fprintf(a.Err, "Error: %s\n", msg)
	return subcommands.ExitFailure
}

// password returns the flag value when given. Otherwise it prompts when a password
// is set and falls back to the empty password when none is.
func (a *App) password(ctx context.Context, p *passwordFlag) (string, error) {
	if p.set {
		return p.value, nil
	}
	if !a.Auth.IsPasswordSet(ctx) {
		return "", nil
	}
	return a.ReadPassword("Password: ")
}

// go-money counts in int64 minor units
var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// formatAmount renders amount with the configured currency, falling back to the plain number.
func (a *App) formatAmount(amount decimal.Decimal) string {
	cur := money.GetCurrency(a.Currency)
	if cur == nil {
		return amount.String()
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return amount.String()
	}
	return cur.Formatter().Format(minor.IntPart())
}
