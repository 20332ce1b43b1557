package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/scf-platform/api-contract-tests/framework"
	"github.com/scf-platform/api-contract-tests/scftests"
)

type commandParams struct {
	baseURL    string
	healthURL  string
	configFile string
	filters    framework.RegexFilters
	timeout    time.Duration
	debug      bool
	debugAll   bool
	noColor    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.baseURL, "url", "", "API base URL (default "+scftests.DefaultBaseURL+")")
	fs.StringVar(&c.healthURL, "health-url", "", "liveness URL (default: base URL without /api, plus /health)")
	fs.StringVar(&c.configFile, "config", "", "YAML file with environment and fixture settings")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select steps to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select steps not to run")
	fs.DurationVar(&c.timeout, "timeout", 0, "timeout for each request (0 means no timeout)")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed steps")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all steps")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false
	}
	for _, u := range []string{c.baseURL, c.healthURL} {
		if u != "" && !isHTTPURL(u) {
			fmt.Fprintf(os.Stderr, "not a valid http(s) URL: %s\n", u)
			return false
		}
	}
	return true
}

// SuiteConfig combines the config file, if any, with the URL flags, which take precedence.
func (c *commandParams) SuiteConfig() (scftests.Config, error) {
	cfg := scftests.DefaultConfig()
	if c.configFile != "" {
		var err error
		if cfg, err = scftests.LoadConfig(c.configFile); err != nil {
			return scftests.Config{}, err
		}
	}
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	if c.healthURL != "" {
		cfg.HealthURL = c.healthURL
	}
	return cfg.WithDefaults(), nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
