package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type statusCmd struct {
	app *App
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "tells whether a password is set" }
func (*statusCmd) Usage() string {
	return `budgetbook status

  Prints whether a password has been set for the budget book.
`
}
func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (c *statusCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.app.Auth.IsPasswordSet(ctx) {
		fmt.Fprintln(c.app.Out, "password is set")
		return subcommands.ExitSuccess
	}
	fmt.Fprintln(c.app.Out, "password is not set")
	return subcommands.ExitSuccess
}

type setPasswordCmd struct {
	app      *App
	password passwordFlag
	force    bool
}

func (*setPasswordCmd) Name() string     { return "set-password" }
func (*setPasswordCmd) Synopsis() string { return "stores the password hash" }
func (*setPasswordCmd) Usage() string {
	return `budgetbook set-password [-password <password>] [-force]

  Stores the hash of the password. The data file is not re-encrypted, so
  replacing an existing password needs -force; use change-password instead
  to keep existing entries readable.
`
}

func (c *setPasswordCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.password, "password", "The new password. Prompted for when omitted.")
	f.BoolVar(&c.force, "force", false, "Replace an existing password without re-encrypting the data.")
}

func (c *setPasswordCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.app.Auth.IsPasswordSet(ctx) && !c.force {
		return c.app.fail("a password is already set, use change-password or -force")
	}

	password := c.password.value
	if !c.password.set {
		var err error
		password, err = c.app.confirmedPassword("New password: ")
		if err != nil {
			return c.app.fail("%v", err)
		}
	}

	msg, err := c.app.Auth.SetPassword(ctx, password)
	if err != nil {
		return c.app.fail("couldn't set password: %v", err)
	}
	fmt.Fprintln(c.app.Out, msg)
	return subcommands.ExitSuccess
}

type verifyPasswordCmd struct {
	app      *App
	password passwordFlag
}

func (*verifyPasswordCmd) Name() string     { return "verify-password" }
func (*verifyPasswordCmd) Synopsis() string { return "checks a password against the stored hash" }
func (*verifyPasswordCmd) Usage() string {
	return `budgetbook verify-password [-password <password>]

  Exits with a failure status when the password doesn't match.
`
}

func (c *verifyPasswordCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.password, "password", "The password to check. Prompted for when omitted.")
}

func (c *verifyPasswordCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	password := c.password.value
	if !c.password.set {
		var err error
		password, err = c.app.ReadPassword("Password: ")
		if err != nil {
			return c.app.fail("%v", err)
		}
	}

	ok, err := c.app.Auth.VerifyPassword(ctx, password)
	if err != nil {
		return c.app.fail("couldn't verify password: %v", err)
	}
	if !ok {
		fmt.Fprintln(c.app.Out, "wrong password")
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.app.Out, "password ok")
	return subcommands.ExitSuccess
}

type changePasswordCmd struct {
	app         *App
	oldPassword passwordFlag
	newPassword passwordFlag
}

func (*changePasswordCmd) Name() string     { return "change-password" }
func (*changePasswordCmd) Synopsis() string { return "re-encrypts the book with a new password" }
func (*changePasswordCmd) Usage() string {
	return `budgetbook change-password [-old <password>] [-new <password>]

  Loads the entries with the old password, saves them with the new one and
  stores the new password hash.
`
}

func (c *changePasswordCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.oldPassword, "old", "The current password. Prompted for when omitted and a password is set.")
	f.Var(&c.newPassword, "new", "The new password. Prompted for when omitted.")
}

func (c *changePasswordCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	oldPassword, err := c.app.password(ctx, &c.oldPassword)
	if err != nil {
		return c.app.fail("%v", err)
	}
	newPassword := c.newPassword.value
	if !c.newPassword.set {
		newPassword, err = c.app.confirmedPassword("New password: ")
		if err != nil {
			return c.app.fail("%v", err)
		}
	}

	msg, err := c.app.Book.ChangePassword(ctx, oldPassword, newPassword)
	if err != nil {
		return c.app.fail("couldn't change password: %v", err)
	}
	fmt.Fprintln(c.app.Out, msg)
	return subcommands.ExitSuccess
}

// confirmedPassword prompts twice and fails when the answers differ.
func (a *App) confirmedPassword(prompt string) (string, error) {
	first, err := a.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	second, err := a.ReadPassword("Repeat: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("passwords don't match")
	}
	return first, nil
}
