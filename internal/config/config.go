package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Storage  Storage
	Currency string `env:"BUDGET_CURRENCY" envDefault:"JPY"` // used for display only
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type Storage struct {
	DataDir      string `env:"BUDGET_DATA_DIR" envDefault:"data"`
	DataFile     string `env:"BUDGET_DATA_FILE" envDefault:"budget_book_data.bin"`
	PasswordFile string `env:"BUDGET_PASSWORD_FILE" envDefault:"password.hash"`
	AtomicWrite  bool   `env:"BUDGET_ATOMIC_WRITE" envDefault:"true"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	// .env is for local runs only, its absence is fine
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config, parse environment error: %w", err)
	}
	return &cfg, nil
}

// Validate returns every problem found, not only the first one.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Storage.DataDir) == "" {
		problems = append(problems, "data directory cannot be empty")
	}
	for _, f := range []struct{ name, file string }{
		{name: "data file", file: c.Storage.DataFile},
		{name: "password file", file: c.Storage.PasswordFile},
	} {
		switch {
		case strings.TrimSpace(f.file) == "":
			problems = append(problems, fmt.Sprintf("%s name cannot be empty", f.name))
		case filepath.Base(f.file) != f.file:
			problems = append(problems, fmt.Sprintf("%s name %q must not contain a directory", f.name, f.file))
		}
	}
	if c.Storage.DataFile != "" && c.Storage.DataFile == c.Storage.PasswordFile {
		problems = append(problems, "data file and password file must differ")
	}
	if money.GetCurrency(c.Currency) == nil {
		problems = append(problems, fmt.Sprintf("unknown currency %q", c.Currency))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
