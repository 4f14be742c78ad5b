// sfvcheck parses HTTP structured field values from the command line.
//
// In its default mode it reads one field value from the arguments (or from
// stdin when no arguments are given), parses it as the requested header
// type, and prints the result as generic JSON:
//
//	sfvcheck --type dictionary 'a=1, b=2;x, c=(1 2 3)'
//
// With --fixtures it runs conformance fixture files instead and reports
// each failing case:
//
//	sfvcheck --fixtures 'testdata/*.jsonc'
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	sfv "github.com/KimNorgaard/go-sfv"
	"github.com/KimNorgaard/go-sfv/internal/fixture"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	var headerType string
	var fixtures string

	flags := pflag.NewFlagSet("sfvcheck", pflag.ContinueOnError)
	flags.StringVar(&headerType, "type", "item", "header type to parse as: item, list or dictionary")
	flags.StringVar(&fixtures, "fixtures", "", "glob of conformance fixture files to run")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		log.Fatal().Err(err).Msg("invalid flags")
	}

	if fixtures != "" {
		if !runFixtures(log, fixtures) {
			os.Exit(1)
		}
		return
	}

	input, err := readInput(flags.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
	result, err := parse(headerType, input)
	if err != nil {
		log.Fatal().Err(err).Str("type", headerType).Msg("parse failed")
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encoding result")
	}
	fmt.Println(string(out))
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(string(data), "\n")), nil
}

func parse(headerType string, input []byte) (any, error) {
	switch headerType {
	case "item":
		item, err := sfv.ParseItem(input)
		if err != nil {
			return nil, err
		}
		return fixture.GenericItem(item), nil
	case "list":
		list, err := sfv.ParseList(input)
		if err != nil {
			return nil, err
		}
		return fixture.GenericList(list), nil
	case "dictionary":
		dict, err := sfv.ParseDictionary(input)
		if err != nil {
			return nil, err
		}
		return fixture.GenericDictionary(dict), nil
	default:
		return nil, fmt.Errorf("unknown header type %q", headerType)
	}
}

func runFixtures(log zerolog.Logger, glob string) bool {
	files, err := filepath.Glob(glob)
	if err != nil {
		log.Fatal().Err(err).Str("glob", glob).Msg("bad fixtures glob")
	}
	if len(files) == 0 {
		log.Fatal().Str("glob", glob).Msg("no fixture files matched")
	}

	ok := true
	for _, file := range files {
		cases, err := fixture.Load(file)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("loading fixtures")
			ok = false
			continue
		}
		failed := 0
		for i := range cases {
			if err := cases[i].Verify(); err != nil {
				log.Error().Str("file", file).Str("case", cases[i].Name).Err(err).Msg("case failed")
				failed++
			}
		}
		log.Info().Str("file", file).Int("cases", len(cases)).Int("failed", failed).Msg("ran fixtures")
		if failed > 0 {
			ok = false
		}
	}
	return ok
}
