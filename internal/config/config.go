package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings of the lujvo command.
type Config struct {
	Addr      string
	DictPath  string
	Debug     bool
	CacheSize int
	BaseURL   string
	Args      []string // remaining command line arguments
}

const (
	defaultAddr      = ":8080"
	defaultCacheSize = 4096
	defaultBaseURL   = "http://jbovlaste.lojban.org"
)

// Load reads configuration from args, the environment and an optional .env
// file. Explicit flags win over environment variables, which win over
// defaults.
func Load(name string, args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", defaultAddr, "listen address")
	fs.StringVar(&cfg.DictPath, "dict", "", "dictionary YAML file")
	fs.BoolVar(&cfg.Debug, "debug", false, "disable conditional responses")
	fs.IntVar(&cfg.CacheSize, "cache", defaultCacheSize, "decomposition cache size")
	fs.StringVar(&cfg.BaseURL, "base-url", defaultBaseURL, "site missing words link to")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if v := env("LUJVO_ADDR"); v != "" && !explicit["addr"] {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		cfg.Addr = v
	}
	if v := env("LUJVO_DICT"); v != "" && !explicit["dict"] {
		cfg.DictPath = v
	}
	if v := env("LUJVO_DEBUG"); v != "" && !explicit["debug"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("LUJVO_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	if v := env("LUJVO_CACHE_SIZE"); v != "" && !explicit["cache"] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("LUJVO_CACHE_SIZE: %w", err)
		}
		cfg.CacheSize = n
	}
	if v := env("LUJVO_BASE_URL"); v != "" && !explicit["base-url"] {
		cfg.BaseURL = v
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("cache size must be positive, is %d", cfg.CacheSize)
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
