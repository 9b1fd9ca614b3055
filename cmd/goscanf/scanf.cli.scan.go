package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/RaggaMufia/go-scanf"
)

// scanConfig holds parsed scan command configuration
type scanConfig struct {
	format    string
	inputPath string
	inputArg  string
	output    string
	strict    bool
}

func runScan(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseScanFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingFormat, err)
		return ExitCodeUsageError
	}

	input, err := resolveInput(cfg, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadInputFailed, err)
		return ExitCodeInputError
	}

	engine := scanf.MustNew(scanf.WithStrictFormats(cfg.strict))
	result, err := engine.Scan(cfg.format, input)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgScanFailed, err)
		return ExitCodeError
	}
	if result == nil {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgNoMatch, cfg.format)
		return ExitCodeNoMatch
	}

	if cfg.output == OutputFormatJSON {
		return outputResultJSON(result, stdout, stderr)
	}
	return outputResultText(result, stdout)
}

func parseScanFlags(args []string) (*scanConfig, error) {
	fs := flag.NewFlagSet(CmdNameScan, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &scanConfig{}

	fs.StringVar(&cfg.format, FlagFormatString, "", "")
	fs.StringVar(&cfg.format, FlagFormatStringShort, "", "")
	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.output, FlagOutputFormat, FlagDefaultOutputFormat, "")
	fs.StringVar(&cfg.output, FlagOutputFormatShort, FlagDefaultOutputFormat, "")
	fs.BoolVar(&cfg.strict, FlagStrictMode, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.format == "" {
		return nil, errors.New(ErrMsgMissingFormat)
	}
	if cfg.output != OutputFormatText && cfg.output != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidOutput)
	}

	cfg.inputArg = strings.Join(fs.Args(), " ")
	return cfg, nil
}

// resolveInput picks the input source: positional argument first, then
// --input file (or stdin via "-").
func resolveInput(cfg *scanConfig, stdin io.Reader) (string, error) {
	if cfg.inputArg != "" {
		return cfg.inputArg, nil
	}
	if cfg.inputPath != "" {
		data, err := readInput(cfg.inputPath, stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", errors.New(ErrMsgMissingInput)
}

func outputResultText(result *scanf.Result, stdout io.Writer) int {
	if result.Kind() == scanf.ResultKindNamed {
		named := result.Named()
		keys := make([]string, 0, len(named))
		for k := range named {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(stdout, "%s=%v\n", k, named[k])
		}
		return ExitCodeSuccess
	}

	for _, v := range result.Values() {
		fmt.Fprintf(stdout, "%v\n", v)
	}
	return ExitCodeSuccess
}

func outputResultJSON(result *scanf.Result, stdout, stderr io.Writer) int {
	var payload any
	if result.Kind() == scanf.ResultKindNamed {
		payload = result.Named()
	} else {
		payload = result.Values()
	}

	jsonBytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgScanFailed, err)
		return ExitCodeError
	}
	fmt.Fprintln(stdout, string(jsonBytes))
	return ExitCodeSuccess
}
