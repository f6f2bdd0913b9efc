package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emojigit/chinadisambig/config"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Get subcommand
	subcommand := os.Args[1]
	args := os.Args[2:]

	switch subcommand {
	case "run":
		handleRun(args)
	case "plan":
		handlePlan(args)
	case "preview":
		handlePreview(args)
	case "contribs":
		handleContribs(args)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("chinadisambig - Create <year>年中國 disambiguation pages on Chinese Wikipedia")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  chinadisambig <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run        Review and apply edits for a range of years")
	fmt.Println("  plan       Show what a run would do, without logging in")
	fmt.Println("  preview    Render a year's page and check its links")
	fmt.Println("  contribs   List the bot account's recent contributions")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  WIKI_API_URL            API endpoint (default: " + config.DefaultAPIURL + ")")
	fmt.Println("  WIKI_USER_AGENT         User agent sent with every request")
	fmt.Println("  WIKI_USERNAME           Bot username")
	fmt.Println("  WIKI_BOTPASSWORD        Bot password")
	fmt.Println("  WIKI_LOG_PAGE           Page that receives the edit log")
	fmt.Println("  EDIT_LOWER_BOUND        First year to process")
	fmt.Println("  EDIT_UPPER_BOUND        Last year to process")
	fmt.Println("  EDIT_MODE               strict or permissive (default: strict)")
	fmt.Println("  EDIT_PAUSE              Pause after a year without edits (default: 3s)")
	fmt.Println("  CHINADISAMBIG_ENV_FILE  Env file to load (default: .env)")
}

// commonFlags are shared by every subcommand that reads configuration.
type commonFlags struct {
	configPath *string
	lower      *string
	upper      *string
	mode       *string
}

func addConfigFlag(fs *flag.FlagSet) *string {
	return fs.String("config", "", "Path to config file (default: ~/.chinadisambig/config.yaml)")
}

func addRangeFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: addConfigFlag(fs),
		lower:      fs.String("lower", "", "First year to process"),
		upper:      fs.String("upper", "", "Last year to process"),
		mode:       fs.String("mode", "", "Classifier mode: strict or permissive"),
	}
}

// loadConfig resolves configuration and exits on failure.
func loadConfig(configPath string) *config.Config {
	cfg, err := config.Load(configPath, getEnv("CHINADISAMBIG_ENV_FILE", ".env"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// apply overrides cfg with the flags that were given.
func (f commonFlags) apply(cfg *config.Config) error {
	if *f.lower != "" {
		n, err := config.ParseYear(*f.lower)
		if err != nil {
			return fmt.Errorf("--lower: %w", err)
		}
		cfg.LowerBound = &n
	}
	if *f.upper != "" {
		n, err := config.ParseYear(*f.upper)
		if err != nil {
			return fmt.Errorf("--upper: %w", err)
		}
		cfg.UpperBound = &n
	}
	if *f.mode != "" {
		if err := cfg.SetMode(*f.mode); err != nil {
			return fmt.Errorf("--mode: %w", err)
		}
	}
	return nil
}
