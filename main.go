package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/budgetbook/internal/cli"
	"github.com/chucky-1/budgetbook/internal/config"
	"github.com/chucky-1/budgetbook/internal/repository"
	"github.com/chucky-1/budgetbook/internal/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	logrus.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	dataDir := flag.String("data-dir", cfg.Storage.DataDir, "Directory holding the data file and the password hash (env BUDGET_DATA_DIR)")
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	flag.Parse()

	cfg.Storage.DataDir = *dataDir
	if err = cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(level)

	opts := repository.Options{
		Dir:          cfg.Storage.DataDir,
		DataFile:     cfg.Storage.DataFile,
		PasswordFile: cfg.Storage.PasswordFile,
		AtomicWrite:  cfg.Storage.AtomicWrite,
	}
	bookFile := repository.NewBookFile(opts)
	if err = bookFile.Initialize(); err != nil {
		logrus.Fatalf("couldn't initialize storage: %v", err)
	}

	auth := service.NewAuth(repository.NewPasswordFile(opts))
	cli.Register(commander, &cli.App{
		Auth:         auth,
		Book:         service.NewBook(bookFile, auth),
		Currency:     cfg.Currency,
		In:           os.Stdin,
		Out:          os.Stdout,
		Err:          os.Stderr,
		ReadPassword: cli.TerminalPassword,
	})

	status := commander.Execute(ctx)
	cancel()
	os.Exit(int(status))
}
