package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/chucky-1/budgetbook/internal/model"
)

const dateLayout = "2006-01-02"

type saveCmd struct {
	app      *App
	in       string
	password passwordFlag
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "replaces the book with entries read from JSON" }
func (*saveCmd) Usage() string {
	return `budgetbook save [-in <file.json>] [-password <password>]

  Reads a JSON array of entries and replaces the whole book with it.

Usage Examples:
$ echo '[{"date":"2024-01-01","type":"Income","amount":1000}]' | budgetbook save -password secret
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "-", "JSON file with the entries, - for stdin.")
	f.Var(&c.password, "password", "The book password. Prompted for when omitted and a password is set.")
}

func (c *saveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := c.readEntries()
	if err != nil {
		return c.app.fail("couldn't read entries from %q: %v", c.in, err)
	}
	password, err := c.app.password(ctx, &c.password)
	if err != nil {
		return c.app.fail("%v", err)
	}

	msg, err := c.app.Book.SaveData(ctx, entries, password)
	if err != nil {
		return c.app.fail("couldn't save: %v", err)
	}
	fmt.Fprintln(c.app.Out, msg)
	return subcommands.ExitSuccess
}

func (c *saveCmd) readEntries() ([]model.Entry, error) {
	var r io.Reader = c.app.In
	if c.in != "-" {
		f, err := os.Open(c.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var entries []model.Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, errors.New("expected an array of entries, got null")
	}
	return entries, nil
}

type listCmd struct {
	app      *App
	asJSON   bool
	password passwordFlag
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "prints the entries of the book" }
func (*listCmd) Usage() string {
	return `budgetbook list [-json] [-password <password>]

  Prints the entries in stored order, as a table or as JSON.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the entries as JSON.")
	f.Var(&c.password, "password", "The book password. Prompted for when omitted and a password is set.")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	password, err := c.app.password(ctx, &c.password)
	if err != nil {
		return c.app.fail("%v", err)
	}
	entries, err := c.app.Book.LoadData(ctx, password)
	if err != nil {
		return c.app.fail("couldn't load: %v", err)
	}

	if c.asJSON {
		return c.app.writeJSON(entries)
	}

	w := tabwriter.NewWriter(c.app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tType\tAmount\t")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", entry.Date, entry.Kind, c.app.formatAmount(entry.Amount))
	}
	if err = w.Flush(); err != nil {
		return c.app.fail("%v", err)
	}
	return subcommands.ExitSuccess
}

type addCmd struct {
	app      *App
	date     string
	kind     string
	amount   string
	password passwordFlag
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "appends one entry to the book" }
func (*addCmd) Usage() string {
	return `budgetbook add -type <income|expense|...> -amount <amount> [-date YYYY-MM-DD] [-password <password>]

  Appends an entry. The date defaults to today. Any type other than "income"
  is counted as an expense.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", time.Now().Format(dateLayout), "Date of the entry (YYYY-MM-DD).")
	f.StringVar(&c.kind, "type", "expense", "Type of the entry, income or any expense label.")
	f.StringVar(&c.amount, "amount", "", "Non negative amount.")
	f.Var(&c.password, "password", "The book password. Prompted for when omitted and a password is set.")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := time.Parse(dateLayout, c.date); err != nil {
		fmt.Fprintf(c.app.Err, "Error: invalid -date %q, expected YYYY-MM-DD\n", c.date)
		return subcommands.ExitUsageError
	}
	if c.amount == "" {
		fmt.Fprintln(c.app.Err, "Error: -amount is required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(c.app.Err, "Error: invalid -amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	password, err := c.app.password(ctx, &c.password)
	if err != nil {
		return c.app.fail("%v", err)
	}

	msg, err := c.app.Book.AddEntry(ctx, model.NewEntry(c.date, c.kind, amount), password)
	if err != nil {
		return c.app.fail("couldn't add entry: %v", err)
	}
	fmt.Fprintln(c.app.Out, msg)
	return subcommands.ExitSuccess
}

type chartCmd struct {
	app      *App
	password passwordFlag
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "prints income and expense series as JSON" }
func (*chartCmd) Usage() string {
	return `budgetbook chart [-password <password>]

  Prints {"income": [[date, amount], ...], "expense": [[date, amount], ...]}.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.password, "password", "The book password. Prompted for when omitted and a password is set.")
}

func (c *chartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	password, err := c.app.password(ctx, &c.password)
	if err != nil {
		return c.app.fail("%v", err)
	}
	chart, err := c.app.Book.ChartData(ctx, password)
	if err != nil {
		return c.app.fail("couldn't build chart: %v", err)
	}
	return c.app.writeJSON(chart)
}

func (a *App) writeJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return a.fail("%v", err)
	}
	return subcommands.ExitSuccess
}
