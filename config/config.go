// Package config resolves the bot's settings from defaults, a YAML file, a
// .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/emojigit/chinadisambig/disambig"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL    = "https://zh.wikipedia.org/w/api.php"
	DefaultUserAgent = "ChinaDisambig/1.0 (github.com/Emojigit/ChinaDisambig)"
	DefaultPause     = 3 * time.Second
)

// ErrInvalidRange is returned when the lower year bound exceeds the upper.
var ErrInvalidRange = errors.New("lower bound is greater than upper bound")

// Config is the resolved configuration of one run. LowerBound and UpperBound
// are nil until set by a source or a prompt.
type Config struct {
	APIURL     string
	UserAgent  string
	Username   string
	Password   string
	LowerBound *int
	UpperBound *int
	LogPage    string
	Mode       disambig.Mode
	Pause      time.Duration
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		APIURL:    DefaultAPIURL,
		UserAgent: DefaultUserAgent,
		Mode:      disambig.Strict,
		Pause:     DefaultPause,
	}
}

// Load resolves configuration with precedence:
// 1. Environment variables, including those from envFile (highest priority)
// 2. Configuration file at configPath (default ~/.chinadisambig/config.yaml)
// 3. Default values (lowest priority)
//
// A missing config file or env file is not an error. Variables already in
// the environment win over the env file.
func Load(configPath, envFile string) (*Config, error) {
	cfg := Default()

	file, err := LoadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := cfg.applyFile(file); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(f *FileConfig) error {
	if f.Wiki.APIURL != "" {
		c.APIURL = f.Wiki.APIURL
	}
	if f.Wiki.UserAgent != "" {
		c.UserAgent = f.Wiki.UserAgent
	}
	if f.Wiki.Username != "" {
		c.Username = f.Wiki.Username
	}
	if f.Wiki.Password != "" {
		c.Password = f.Wiki.Password
	}
	if f.Run.LowerBound != nil {
		c.LowerBound = f.Run.LowerBound
	}
	if f.Run.UpperBound != nil {
		c.UpperBound = f.Run.UpperBound
	}
	if f.Run.LogPage != "" {
		c.LogPage = f.Run.LogPage
	}
	if f.Run.Mode != "" {
		if err := c.SetMode(f.Run.Mode); err != nil {
			return err
		}
	}
	if f.Run.Pause != "" {
		if err := c.SetPause(f.Run.Pause); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if val := os.Getenv("WIKI_API_URL"); val != "" {
		c.APIURL = val
	}
	if val := os.Getenv("WIKI_USER_AGENT"); val != "" {
		c.UserAgent = val
	}
	if val := os.Getenv("WIKI_USERNAME"); val != "" {
		c.Username = val
	}
	if val := os.Getenv("WIKI_BOTPASSWORD"); val != "" {
		c.Password = val
	}
	if val := os.Getenv("WIKI_LOG_PAGE"); val != "" {
		c.LogPage = val
	}
	if val := os.Getenv("EDIT_LOWER_BOUND"); val != "" {
		n, err := ParseYear(val)
		if err != nil {
			return fmt.Errorf("invalid EDIT_LOWER_BOUND: %w", err)
		}
		c.LowerBound = &n
	}
	if val := os.Getenv("EDIT_UPPER_BOUND"); val != "" {
		n, err := ParseYear(val)
		if err != nil {
			return fmt.Errorf("invalid EDIT_UPPER_BOUND: %w", err)
		}
		c.UpperBound = &n
	}
	if val := os.Getenv("EDIT_MODE"); val != "" {
		if err := c.SetMode(val); err != nil {
			return err
		}
	}
	if val := os.Getenv("EDIT_PAUSE"); val != "" {
		if err := c.SetPause(val); err != nil {
			return err
		}
	}
	return nil
}

// SetMode sets the classifier mode from its name.
func (c *Config) SetMode(s string) error {
	mode, err := disambig.ParseMode(s)
	if err != nil {
		return err
	}
	c.Mode = mode
	return nil
}

// SetPause sets the idle pause from a Go duration string.
func (c *Config) SetPause(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid pause %q: must be a valid duration (e.g., 3s)", s)
	}
	if d < 0 {
		return fmt.Errorf("invalid pause %q: must not be negative", s)
	}
	c.Pause = d
	return nil
}

// ParseYear parses a year bound.
func ParseYear(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return n, nil
}

// ValidateRange checks that both bounds are set and ordered.
func (c *Config) ValidateRange() error {
	if c.LowerBound == nil || c.UpperBound == nil {
		return errors.New("year range is not set")
	}
	if *c.LowerBound > *c.UpperBound {
		return fmt.Errorf("%w (%d > %d)", ErrInvalidRange, *c.LowerBound, *c.UpperBound)
	}
	return nil
}

// Validate checks everything an editing run needs.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("API URL is not set")
	}
	if c.Username == "" {
		return errors.New("username is not set")
	}
	if c.Password == "" {
		return errors.New("password is not set")
	}
	return c.ValidateRange()
}

// Years returns the inclusive list of years in range. The range must be
// valid.
func (c *Config) Years() []int {
	if c.ValidateRange() != nil {
		return nil
	}
	years := make([]int, 0, *c.UpperBound-*c.LowerBound+1)
	for y := *c.LowerBound; y <= *c.UpperBound; y++ {
		years = append(years, y)
	}
	return years
}
