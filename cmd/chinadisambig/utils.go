package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emojigit/chinadisambig/config"
	"golang.org/x/term"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// stdin is shared by the prompts and the review loop so that buffered input
// is never lost between them.
var stdin = bufio.NewReader(os.Stdin)

// promptLine prints label and reads one line without its line ending.
func promptLine(label string) (string, error) {
	fmt.Print(label)
	line, err := stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptPassword reads a password without echo when stdin is a terminal.
func promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine(label)
	}

	fmt.Print(label)
	b, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(b), nil
}

func promptYear(label string) (int, error) {
	s, err := promptLine(label)
	if err != nil {
		return 0, err
	}
	return config.ParseYear(strings.TrimSpace(s))
}

// promptRange asks for whichever year bound is still unset.
func promptRange(cfg *config.Config) error {
	if cfg.LowerBound == nil {
		n, err := promptYear("Lower bound: ")
		if err != nil {
			return err
		}
		cfg.LowerBound = &n
	}
	if cfg.UpperBound == nil {
		n, err := promptYear("Upper bound: ")
		if err != nil {
			return err
		}
		cfg.UpperBound = &n
	}
	return nil
}

// promptCredentials asks for whichever login setting is still unset. An
// empty log page answer disables logging.
func promptCredentials(cfg *config.Config) error {
	var err error
	if cfg.Username == "" {
		if cfg.Username, err = promptLine("Username: "); err != nil {
			return err
		}
	}
	if cfg.Password == "" {
		if cfg.Password, err = promptPassword("Bot password: "); err != nil {
			return err
		}
	}
	if cfg.LogPage == "" {
		if cfg.LogPage, err = promptLine("Log page (empty for none): "); err != nil {
			return err
		}
		cfg.LogPage = strings.TrimSpace(cfg.LogPage)
	}
	return nil
}

// accountName strips the bot password suffix from a login name, so
// "Example@bot" becomes "Example".
func accountName(username string) string {
	if i := strings.Index(username, "@"); i >= 0 {
		return username[:i]
	}
	return username
}
