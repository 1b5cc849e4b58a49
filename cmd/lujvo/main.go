// Command lujvo decomposes Lojban compounds and serves a small dictionary
// site.
//
//	lujvo decompose jbovlaste sampyfa'i
//	lujvo -dict words.yaml suggest lsite
//	lujvo -dict words.yaml -addr :8080 serve
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/lujvo"
	"github.com/npillmayer/lujvo/dictionary"
	"github.com/npillmayer/lujvo/internal/config"
	"github.com/npillmayer/lujvo/internal/web"
)

func tracer() tracing.Trace {
	return tracing.Select("lujvo")
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lujvo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load("lujvo", args)
	if err != nil {
		return err
	}
	if len(cfg.Args) == 0 {
		return errors.New("usage: lujvo [flags] decompose|suggest|serve [words...]")
	}
	switch cmd, rest := cfg.Args[0], cfg.Args[1:]; cmd {
	case "decompose":
		for _, w := range rest {
			compound, ok := lujvo.Canonical(w)
			if !ok {
				fmt.Printf("%s\t(not a Lojban word)\n", w)
				continue
			}
			fmt.Printf("%s\t%s\n", compound, strings.Join(lujvo.Decompose(compound), " "))
		}
		return nil
	case "suggest":
		dict, err := loadDictionary(cfg.DictPath)
		if err != nil {
			return err
		}
		for _, w := range rest {
			for _, sg := range dict.Suggest(w, 2) {
				fmt.Printf("%s\t%s\t%d\n", w, sg.Word, sg.Distance)
			}
		}
		return nil
	case "serve":
		dict, err := loadDictionary(cfg.DictPath)
		if err != nil {
			return err
		}
		srv, err := web.New(dict, web.Options{
			CacheSize: cfg.CacheSize,
			BaseURL:   cfg.BaseURL,
			Debug:     cfg.Debug,
		})
		if err != nil {
			return err
		}
		tracer().Infof("serving %s on %s", dict.Identifier, cfg.Addr)
		return http.ListenAndServe(cfg.Addr, srv.Handler())
	}
	return fmt.Errorf("unknown command %q", cfg.Args[0])
}

func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return nil, errors.New("no dictionary given, use -dict or LUJVO_DICT")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dict, err := dictionary.Load(path, dictionary.NewYAMLReader(f))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return dict, nil
}
